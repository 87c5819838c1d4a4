package catalog

// Fallback returns the built-in catalog used when the remote menu source
// is unreachable. It covers all four categories so browsing and the cart
// keep working in degraded mode; prices may be stale by definition.
func Fallback() []Item {
	return []Item{
		{
			ID:          "fallback-1",
			Category:    "Entrées",
			Name:        "Raviolis aux crevettes",
			Description: "Délicieux raviolis vapeur garnis de crevettes fraîches",
			Price:       12.50,
			ImageURL:    "/static/img/raviolis-crevettes.jpg",
		},
		{
			ID:          "fallback-2",
			Category:    "Entrées",
			Name:        "Nems aux légumes",
			Description: "Rouleaux croustillants aux légumes frais",
			Price:       8.90,
			ImageURL:    "/static/img/nems-legumes.jpg",
		},
		{
			ID:          "fallback-3",
			Category:    "Plats",
			Name:        "Canard laqué de Pékin",
			Description: "Canard traditionnel avec crêpes et sauce hoisin",
			Price:       28.90,
			ImageURL:    "/static/img/canard-laque.jpg",
		},
		{
			ID:          "fallback-4",
			Category:    "Plats",
			Name:        "Porc au caramel",
			Description: "Porc mijoté dans une sauce caramel",
			Price:       18.50,
			ImageURL:    "/static/img/porc-caramel.jpg",
		},
		{
			ID:          "fallback-5",
			Category:    "Desserts",
			Name:        "Perles de coco",
			Description: "Boulettes de riz gluant à la noix de coco",
			Price:       6.50,
			ImageURL:    "/static/img/perles-coco.jpg",
		},
		{
			ID:          "fallback-6",
			Category:    "Boissons",
			Name:        "Thé au jasmin",
			Description: "Thé vert parfumé au jasmin",
			Price:       3.50,
			ImageURL:    "/static/img/the-jasmin.jpg",
		},
	}
}
