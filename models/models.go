package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrBadRequest = errors.New("bad request")
var ErrValidation = errors.New("validation failed")
var ErrUnauthorized = errors.New("unauthorized")
var ErrForbidden = errors.New("forbidden")
var ErrNotFound = errors.New("not found")
var ErrServerError = errors.New("server error")

// ValidationErrors maps a field name to the message shown to the caller.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string { return "validation failed" }
func (v ValidationErrors) Unwrap() error { return ErrValidation }

type User_db struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

type Product_db struct {
	Id         int             `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	CategoryId int             `json:"category_id"`
	BrandId    int             `json:"brand_id"`
}

type Category_db struct {
	Id          int    `json:"id"`
	Name        string `json:"category_name"`
	Description string `json:"description"`
}

type Brand_db struct {
	Id      int    `json:"id"`
	Name    string `json:"brand_name"`
	Address string `json:"brand_address"`
	Email   string `json:"brand_email"`
}

type Store_db struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

type Payment_db struct {
	Id       int    `json:"id"`
	Method   string `json:"method"`
	NumberId string `json:"number_id"`
}

type Delivery_db struct {
	Id              int             `json:"id"`
	OrderType       string          `json:"order_type"`
	ExtraProtection bool            `json:"extra_protection"`
	ShippingPrice   decimal.Decimal `json:"shipping_price"`
}

type Voucher_db struct {
	Id            int             `json:"id"`
	DiscountPrice decimal.Decimal `json:"discount_price"`
	ExpiredDate   string          `json:"expired_date"`
	Description   string          `json:"description"`
}

type Order_db struct {
	Id                 int    `json:"id"`
	OrderDate          string `json:"order_date"`
	Description        string `json:"description"`
	UserId             int    `json:"user_id"`
	ProductId          int    `json:"product_id"`
	VoucherId          *int   `json:"voucher_id"`
	PaymentId          *int   `json:"payment_id"`
	DeliveryId         *int   `json:"delivery_id"`
	DestinationAddress string `json:"destination_address"`
}
