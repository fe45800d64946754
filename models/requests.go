package models

import "github.com/shopspring/decimal"

// Request payloads, one per operation, validated at the boundary.
// Messages mirror the ones the API has always returned.

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if c.Email == "" {
		errs["email"] = requiredMsg("email")
	} else if !isValidEmail(c.Email) {
		errs["email"] = "The email field must be a valid email address."
	}
	if c.Password == "" {
		errs["password"] = requiredMsg("password")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if r.Name == "" {
		errs["name"] = requiredMsg("name")
	} else if !maxLen(r.Name, 50) {
		errs["name"] = tooLongMsg("name", 50)
	}
	if r.Email == "" {
		errs["email"] = requiredMsg("email")
	} else if !isValidEmail(r.Email) {
		errs["email"] = "The email field must be a valid email address."
	}
	if r.Password == "" {
		errs["password"] = requiredMsg("password")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type ProductRequest struct {
	Name       string           `json:"name"`
	Price      *decimal.Decimal `json:"price"`
	Stock      *int             `json:"stock"`
	CategoryId *int             `json:"category_id"`
	BrandId    *int             `json:"brand_id"`
}

func (p ProductRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.Name == "" {
		errs["name"] = requiredMsg("name")
	} else if !maxLen(p.Name, 255) {
		errs["name"] = tooLongMsg("name", 255)
	}
	if p.Price == nil {
		errs["price"] = requiredMsg("price")
	}
	if p.Stock == nil {
		errs["stock"] = requiredMsg("stock")
	}
	if p.CategoryId == nil {
		errs["category_id"] = requiredMsg("category_id")
	}
	if p.BrandId == nil {
		errs["brand_id"] = requiredMsg("brand_id")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type StoreRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// Create keeps the tighter historical caps, replace allows the usual 255.
func (s StoreRequest) Validate() ValidationErrors        { return s.validate(50, 30, 30) }
func (s StoreRequest) ValidateReplace() ValidationErrors { return s.validate(255, 255, 255) }

func (s StoreRequest) validate(nameMax, phoneMax, addressMax int) ValidationErrors {
	errs := ValidationErrors{}
	if s.Name == "" {
		errs["name"] = requiredMsg("name")
	} else if !maxLen(s.Name, nameMax) {
		errs["name"] = tooLongMsg("name", nameMax)
	}
	if s.PhoneNumber == "" {
		errs["phone_number"] = requiredMsg("phone_number")
	} else if !isDigits(s.PhoneNumber) {
		errs["phone_number"] = "The phone_number field must be a number."
	} else if !maxLen(s.PhoneNumber, phoneMax) {
		errs["phone_number"] = tooLongMsg("phone_number", phoneMax)
	}
	if s.Address == "" {
		errs["address"] = requiredMsg("address")
	} else if !maxLen(s.Address, addressMax) {
		errs["address"] = tooLongMsg("address", addressMax)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type CategoryRequest struct {
	Name        string `json:"category_name"`
	Description string `json:"description"`
}

func (c CategoryRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if c.Name == "" {
		errs["category_name"] = requiredMsg("category_name")
	} else if !maxLen(c.Name, 255) {
		errs["category_name"] = tooLongMsg("category_name", 255)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type BrandRequest struct {
	Name    string `json:"brand_name"`
	Address string `json:"brand_address"`
	Email   string `json:"brand_email"`
}

func (b BrandRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if b.Name == "" {
		errs["brand_name"] = requiredMsg("brand_name")
	} else if !maxLen(b.Name, 255) {
		errs["brand_name"] = tooLongMsg("brand_name", 255)
	}
	if b.Address == "" {
		errs["brand_address"] = requiredMsg("brand_address")
	} else if !maxLen(b.Address, 255) {
		errs["brand_address"] = tooLongMsg("brand_address", 255)
	}
	if b.Email == "" {
		errs["brand_email"] = requiredMsg("brand_email")
	} else if !isValidEmail(b.Email) {
		errs["brand_email"] = "The brand_email field must be a valid email address."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type PaymentRequest struct {
	Method   string `json:"method"`
	NumberId string `json:"number_id"`
}

func (p PaymentRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.Method == "" {
		errs["method"] = requiredMsg("method")
	} else if !maxLen(p.Method, 255) {
		errs["method"] = tooLongMsg("method", 255)
	}
	if p.NumberId == "" {
		errs["number_id"] = requiredMsg("number_id")
	} else if !maxLen(p.NumberId, 255) {
		errs["number_id"] = tooLongMsg("number_id", 255)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type VoucherRequest struct {
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	ExpiredDate   string           `json:"expired_date"`
	Description   string           `json:"description"`
}

func (v VoucherRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if v.DiscountPrice == nil {
		errs["discount_price"] = requiredMsg("discount_price")
	}
	if v.ExpiredDate == "" {
		errs["expired_date"] = requiredMsg("expired_date")
	} else if !isValidDate(v.ExpiredDate) {
		errs["expired_date"] = "The expired_date field must be a valid date."
	}
	if v.Description != "" && !maxLen(v.Description, 255) {
		errs["description"] = tooLongMsg("description", 255)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type DeliveryRequest struct {
	OrderType       string           `json:"order_type"`
	ExtraProtection *bool            `json:"extra_protection"`
	ShippingPrice   *decimal.Decimal `json:"shipping_price"`
}

func (d DeliveryRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if d.OrderType == "" {
		errs["order_type"] = requiredMsg("order_type")
	} else if !maxLen(d.OrderType, 255) {
		errs["order_type"] = tooLongMsg("order_type", 255)
	}
	if d.ExtraProtection == nil {
		errs["extra_protection"] = requiredMsg("extra_protection")
	}
	if d.ShippingPrice == nil {
		errs["shipping_price"] = requiredMsg("shipping_price")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type OrderRequest struct {
	OrderDate          string `json:"order_date"`
	Description        string `json:"description"`
	UserId             *int   `json:"user_id"`
	ProductId          *int   `json:"product_id"`
	VoucherId          *int   `json:"voucher_id"`
	PaymentId          *int   `json:"payment_id"`
	DeliveryId         *int   `json:"delivery_id"`
	DestinationAddress string `json:"destination_address"`
}

func (o OrderRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if o.OrderDate == "" {
		errs["order_date"] = requiredMsg("order_date")
	} else if !isValidDate(o.OrderDate) {
		errs["order_date"] = "The order_date field must be a valid date."
	}
	if o.UserId == nil {
		errs["user_id"] = requiredMsg("user_id")
	}
	if o.ProductId == nil {
		errs["product_id"] = requiredMsg("product_id")
	}
	if o.DestinationAddress == "" {
		errs["destination_address"] = requiredMsg("destination_address")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
