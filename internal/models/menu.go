package models

// MenuItemForm carries the admin panel's menu item form fields.
type MenuItemForm struct {
	Category    string  `form:"category" json:"category" binding:"required"`
	Name        string  `form:"name" json:"name" binding:"required"`
	Description string  `form:"description" json:"description"`
	Price       float64 `form:"price" json:"price" binding:"required,gte=0"`
	ImageURL    string  `form:"image_url" json:"image_url"`
}
