package migrations

import "pizza_delivery/internal/models"

// DefaultPizzas is the starter catalog.
var DefaultPizzas = []models.Pizza{
	{
		Name:        "Pepperoni",
		Description: "Classic pizza with tomato sauce, mozzarella and spicy pepperoni",
		Category:    string(models.CategoryClassic),
		Image:       "https://images.unsplash.com/photo-1628840042765-356cda07504e?q=80&w=800&auto=format&fit=crop",
		Prices:      models.PriceTable{models.SizeSmall: 399, models.SizeMedium: 599, models.SizeLarge: 799},
		Tags:        []string{"meat", "cheese"},
	},
	{
		Name:        "Margherita",
		Description: "Traditional Italian pizza with tomato sauce, mozzarella and basil",
		Category:    string(models.CategoryVegetarian),
		Image:       "https://images.unsplash.com/photo-1604068549290-dea0e4a305ca?q=80&w=800&auto=format&fit=crop",
		Prices:      models.PriceTable{models.SizeSmall: 349, models.SizeMedium: 499, models.SizeLarge: 699},
		Tags:        []string{"cheese", "vegetables"},
	},
	{
		Name:        "Four Cheese",
		Description: "A combination of mozzarella, gorgonzola, parmesan and emmental",
		Category:    string(models.CategoryVegetarian),
		Image:       "https://images.unsplash.com/photo-1513104890138-7c749659a591?q=80&w=800&auto=format&fit=crop",
		Prices:      models.PriceTable{models.SizeSmall: 449, models.SizeMedium: 649, models.SizeLarge: 849},
		Tags:        []string{"cheese"},
		Discount:    10,
	},
	{
		Name:        "BBQ",
		Description: "Barbecue sauce, chicken, bacon, onion and mozzarella",
		Category:    string(models.CategoryClassic),
		Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?q=80&w=800&auto=format&fit=crop",
		Prices:      models.PriceTable{models.SizeSmall: 449, models.SizeMedium: 649, models.SizeLarge: 849},
		Tags:        []string{"meat", "bbq-sauce"},
	},
	{
		Name:        "Mexican",
		Description: "Spicy pizza with ground beef, jalapeno, tomatoes, onion and spices",
		Category:    string(models.CategoryClassic),
		Image:       "https://images.unsplash.com/photo-1594007654729-407eedc4fe24?q=80&w=800&auto=format&fit=crop",
		Prices:      models.PriceTable{models.SizeSmall: 499, models.SizeMedium: 699, models.SizeLarge: 899},
		Tags:        []string{"meat", "spicy"},
	},
	{
		Name:        "Hawaiian",
		Description: "Sweet and savory pizza with ham, pineapple and mozzarella",
		Category:    string(models.CategoryClassic),
		Image:       "https://images.unsplash.com/photo-1565299507177-b0ac66763828?q=80&w=800&auto=format&fit=crop",
		Prices:      models.PriceTable{models.SizeSmall: 449, models.SizeMedium: 649, models.SizeLarge: 849},
		Tags:        []string{"meat", "cheese"},
	},
	{
		Name:        "Mushroom",
		Description: "Champignons, wild mushrooms, onion and mozzarella",
		Category:    string(models.CategoryVegetarian),
		Image:       "https://images.unsplash.com/photo-1590947132387-155cc02f3212?q=80&w=800&auto=format&fit=crop",
		Prices:      models.PriceTable{models.SizeSmall: 399, models.SizeMedium: 599, models.SizeLarge: 799},
		Tags:        []string{"mushrooms", "cheese", "vegetables"},
	},
	{
		Name:        "Seafood",
		Description: "Shrimp, mussels, squid and mozzarella",
		Category:    string(models.CategorySeafood),
		Image:       "https://images.unsplash.com/photo-1625740822008-e45abf4e01d0?q=80&w=800&auto=format&fit=crop",
		Prices:      models.PriceTable{models.SizeSmall: 549, models.SizeMedium: 749, models.SizeLarge: 949},
		Tags:        []string{"seafood"},
		IsNew:       true,
	},
}

// DefaultExtras are the flat-priced add-ons.
var DefaultExtras = []models.ExtraIngredient{
	{Name: "Extra cheese", Price: 50, Category: string(models.ExtraCheese)},
	{Name: "Pepperoni", Price: 70, Category: string(models.ExtraMeat)},
	{Name: "Mushrooms", Price: 40, Category: string(models.ExtraVegetables)},
	{Name: "Olives", Price: 30, Category: string(models.ExtraVegetables)},
	{Name: "Ham", Price: 60, Category: string(models.ExtraMeat)},
	{Name: "Bacon", Price: 70, Category: string(models.ExtraMeat)},
	{Name: "BBQ sauce", Price: 20, Category: string(models.ExtraSauce)},
	{Name: "Jalapeno", Price: 30, Category: string(models.ExtraVegetables)},
}
