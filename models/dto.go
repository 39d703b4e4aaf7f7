package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,min=1,max=100"`
	Role     string `json:"role" binding:"required,oneof=customer store"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateMenuRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Price       int    `json:"price" binding:"required,gte=1"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsAvailable *bool  `json:"is_available"`
}

type UpdateMenuRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Price       *int    `json:"price" binding:"omitempty,gte=1"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	IsAvailable *bool   `json:"is_available"`
}

type CreateOrderRequest struct {
	MenuID       int    `json:"menu_id" binding:"required,gte=1"`
	Quantity     int    `json:"quantity" binding:"required,gte=1,lte=10"`
	DeliveryTime string `json:"delivery_time"`
	Notes        string `json:"notes" binding:"omitempty,max=500"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed preparing ready completed cancelled"`
}
