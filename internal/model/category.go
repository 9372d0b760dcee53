// Package model defines the core domain types: expenses, the fixed category
// catalog, and reporting periods.
package model

// Category is a fixed taxonomy entry used to classify expenses. The catalog is
// compiled into the application and never mutated at runtime. Expenses join
// against the catalog by Name, not ID.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Fallback visuals for expenses whose category no longer matches the catalog.
const (
	FallbackColor = "#ccc"
	FallbackIcon  = "📦"
)

var catalog = []Category{
	{ID: "1", Name: "Дети", Color: "#FFD700", Icon: "👶"},
	{ID: "2", Name: "Дом, уют", Color: "#9B59B6", Icon: "🏠"},
	{ID: "3", Name: "Забота о себе", Color: "#F8BBD0", Icon: "💅"},
	{ID: "4", Name: "Здоровье", Color: "#E91E63", Icon: "💊"},
	{ID: "5", Name: "Зубы", Color: "#FF6B9D", Icon: "🦷"},
	{ID: "6", Name: "Кафе и рестораны", Color: "#F44336", Icon: "🍽️"},
	{ID: "7", Name: "Коммуналка", Color: "#673AB7", Icon: "🏡"},
	{ID: "8", Name: "Корректировка", Color: "#9E9E9E", Icon: "❓"},
	{ID: "9", Name: "Машина", Color: "#2196F3", Icon: "🚗"},
	{ID: "10", Name: "Образование", Color: "#009688", Icon: "📚"},
	{ID: "11", Name: "Платежи, комиссии", Color: "#607D8B", Icon: "💳"},
	{ID: "12", Name: "Подарки", Color: "#4CAF50", Icon: "🎁"},
	{ID: "13", Name: "Подписки", Color: "#9C27B0", Icon: "📱"},
	{ID: "14", Name: "Покупки", Color: "#4CAF50", Icon: "🛍️"},
	{ID: "15", Name: "Продукты", Color: "#FF9800", Icon: "🛒"},
	{ID: "16", Name: "Путешествия", Color: "#00BCD4", Icon: "✈️"},
	{ID: "17", Name: "Развлечения", Color: "#87CEEB", Icon: "🎮"},
	{ID: "18", Name: "Транспорт", Color: "#3F51B5", Icon: "🚌"},
	{ID: "19", Name: "Другое", Color: "#E0E0E0", Icon: "📦"},
}

// Categories returns the fixed catalog in display order. The returned slice is
// a copy; the catalog itself is immutable.
func Categories() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

// CategoryByName looks up a catalog entry by name. The second return value
// reports whether the name matched; on a miss a placeholder carrying the
// fallback color and icon is returned so orphaned expenses still render.
func CategoryByName(name string) (Category, bool) {
	for _, cat := range catalog {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{Name: name, Color: FallbackColor, Icon: FallbackIcon}, false
}

// IsKnownCategory reports whether name matches a catalog entry.
func IsKnownCategory(name string) bool {
	_, ok := CategoryByName(name)
	return ok
}
