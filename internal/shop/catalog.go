package shop

// Item is one purchasable shop entry. Prices are in coins.
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
}

var items = []Item{
	{ID: 1, Name: "Sunset Theme", Description: "Warm orange and purple theme", Price: 50, Category: "Themes"},
	{ID: 2, Name: "Ocean Theme", Description: "Calming blue theme", Price: 50, Category: "Themes"},
	{ID: 3, Name: "Forest Theme", Description: "Green nature-inspired theme", Price: 50, Category: "Themes"},
	{ID: 4, Name: "Neon Theme", Description: "Vibrant neon colors", Price: 75, Category: "Themes"},
	{ID: 5, Name: "Glass Theme", Description: "Modern glassmorphism design", Price: 100, Category: "Themes"},
	{ID: 6, Name: "Exclusive Avatar", Description: "Special avatar frame", Price: 100, Category: "Cosmetics"},
	{ID: 7, Name: "Meditation Pack", Description: "Exclusive meditation guides", Price: 75, Category: "Content"},
	{ID: 8, Name: "Second Chance Token", Description: "Save your streak if you miss a day", Price: 30, Category: "Utilities"},
	{ID: 9, Name: "Custom Voice", Description: "Personalized AI voice", Price: 150, Category: "Utilities"},
	{ID: 10, Name: "Astronaut Avatar", Description: "Space-themed avatar", Price: 120, Category: "Avatars"},
	{ID: 11, Name: "Nature Lover Avatar", Description: "Eco-friendly avatar", Price: 90, Category: "Avatars"},
	{ID: 12, Name: "Tech Guru Avatar", Description: "Futuristic avatar", Price: 150, Category: "Avatars"},
	{ID: 13, Name: "Bookworm Avatar", Description: "Literary-themed avatar", Price: 80, Category: "Avatars"},
	{ID: 14, Name: "Music Maestro Avatar", Description: "Music-themed avatar", Price: 110, Category: "Avatars"},
	{ID: 15, Name: "Yoga Master Avatar", Description: "Wellness-themed avatar", Price: 95, Category: "Avatars"},
	{ID: 16, Name: "Gradient Theme", Description: "Beautiful gradient colors", Price: 80, Category: "Themes"},
	{ID: 17, Name: "Dark Mode Theme", Description: "Easy on the eyes", Price: 0, Category: "Themes"},
	{ID: 18, Name: "Sunrise Theme", Description: "Warm morning colors", Price: 70, Category: "Themes"},
	{ID: 19, Name: "Mood Stickers Pack", Description: "Expressive stickers for chat", Price: 40, Category: "Cosmetics"},
	{ID: 20, Name: "Animated Themes", Description: "Live animated backgrounds", Price: 120, Category: "Themes"},
	{ID: 21, Name: "Relaxation Sounds", Description: "10 additional soundscapes", Price: 50, Category: "Content"},
	{ID: 22, Name: "Gratitude Journal", Description: "Special journal covers", Price: 30, Category: "Cosmetics"},
}

// Items returns the full catalog.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// ItemByID looks up a catalog entry.
func ItemByID(id int64) (Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// ByCategory groups the catalog for the storefront, preserving item order
// within each category.
func ByCategory() map[string][]Item {
	categories := make(map[string][]Item)
	for _, item := range items {
		categories[item.Category] = append(categories[item.Category], item)
	}
	return categories
}
