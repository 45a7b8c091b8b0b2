// Package imagepath строит пути к изображениям меню по единому правилу:
// uploads/menus/<restaurant>/<file>.
package imagepath

import (
	"path"
	"strings"
)

const menusRoot = "uploads/menus"

// SanitizeName оставляет только [A-Za-z0-9_]. Каждая последовательность
// остальных символов заменяется на "_", повторные "_" схлопываются,
// крайние обрезаются.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingUnderscore := false
	for _, r := range name {
		if isAllowed(r) && r != '_' {
			if pendingUnderscore && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingUnderscore = false
			b.WriteRune(r)
			continue
		}
		pendingUnderscore = true
	}

	return b.String()
}

// ProductImagePath возвращает путь к файлу товара или "" если путь построить нельзя.
func ProductImagePath(restaurantName, file string) string {
	dir := SanitizeName(restaurantName)
	if dir == "" {
		return ""
	}

	file = strings.TrimSpace(file)
	if file == "" {
		return ""
	}
	// только имя файла, без каталогов из БД
	base := path.Base(strings.ReplaceAll(file, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		return ""
	}

	return path.Join(menusRoot, dir, base)
}

// Resolve выбирает изображение строки заказа: явный URL строки,
// затем текущее изображение товара, иначе nil (клиент рисует заглушку).
func Resolve(explicitURL *string, restaurantName string, productImage *string) *string {
	if explicitURL != nil {
		if u := strings.TrimSpace(*explicitURL); u != "" {
			return &u
		}
	}

	if productImage != nil {
		if p := ProductImagePath(restaurantName, *productImage); p != "" {
			return &p
		}
	}

	return nil
}

func isAllowed(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_'
}
