package models

type Product struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name" gorm:"size:50;not null"`
	Description   string  `json:"description" gorm:"size:255"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
}
