package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"marketstore/entities"
	"marketstore/models"
)

type ProductRepository interface {
	ListProducts(p ListParams, category, brand string) (prods []entities.ProductListing, total int, err error)
	GetProductById(id int) (pModel models.Product_db, exists bool, err error)
	CreateProduct(req models.ProductRequest) (pModel models.Product_db, err error)
	UpdateProductById(id int, req models.ProductRequest) (pModel models.Product_db, exists bool, err error)
	DeleteProductById(id int) (deleted bool, err error)
}

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepository(conn *sql.DB) (ProductRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	return &ProductRepo{
		db: conn,
	}, nil
}

// ListProducts joins category and brand names into each row. The keyword
// matches name, price and stock; category and brand filter by exact name.
func (p *ProductRepo) ListProducts(params ListParams, category, brand string) (prods []entities.ProductListing, total int, err error) {
	conds := []string{}
	args := []any{}
	if params.Keyword != "" {
		args = append(args, "%"+strings.ToLower(params.Keyword)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(LOWER(p.name) LIKE $%d OR LOWER(CAST(p.price AS TEXT)) LIKE $%d OR LOWER(CAST(p.stock AS TEXT)) LIKE $%d)", n, n, n))
	}
	if category != "" {
		args = append(args, strings.ToLower(category))
		conds = append(conds, fmt.Sprintf("LOWER(c.category_name) = $%d", len(args)))
	}
	if brand != "" {
		args = append(args, strings.ToLower(brand))
		conds = append(conds, fmt.Sprintf("LOWER(b.brand_name) = $%d", len(args)))
	}
	from := " FROM products p" +
		" LEFT JOIN categories c ON c.id = p.category_id" +
		" LEFT JOIN brands b ON b.id = p.brand_id"
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	err = p.db.QueryRow("SELECT COUNT(*)"+from+where, args...).Scan(&total)
	if err != nil {
		log.Printf("ListProducts[1]: %v", err)
		err = models.ErrServerError
		return
	}

	query := fmt.Sprintf("SELECT p.id, p.name, p.price, p.stock, c.category_name, b.brand_name%s%s ORDER BY p.name ASC, p.id ASC LIMIT %d OFFSET %d",
		from, where, PageSize, params.offset())
	rows, e := p.db.Query(query, args...)
	if e != nil {
		log.Printf("ListProducts[2]: %v", e)
		err = models.ErrServerError
		return
	}
	defer rows.Close()

	prods = []entities.ProductListing{}
	for rows.Next() {
		var prod entities.ProductListing
		var catName, brandName sql.NullString
		err = rows.Scan(&prod.Id, &prod.Name, &prod.Price, &prod.Stock, &catName, &brandName)
		if err != nil {
			log.Printf("ListProducts[3]: %v", err)
			err = models.ErrServerError
			return
		}
		if catName.Valid {
			prod.Category = &catName.String
		}
		if brandName.Valid {
			prod.Brand = &brandName.String
		}
		prods = append(prods, prod)
	}
	return
}

func (p *ProductRepo) GetProductById(id int) (pModel models.Product_db, exists bool, err error) {
	row := p.db.QueryRow("SELECT id, name, price, stock, category_id, brand_id FROM products WHERE id = $1", id)
	err = row.Scan(&pModel.Id, &pModel.Name, &pModel.Price, &pModel.Stock, &pModel.CategoryId, &pModel.BrandId)
	if err != nil {
		if err == sql.ErrNoRows {
			err = nil
		} else {
			log.Printf("GetProductById: %v", err)
			err = models.ErrServerError
		}
		return
	}
	exists = true
	return
}

func (p *ProductRepo) CreateProduct(req models.ProductRequest) (pModel models.Product_db, err error) {
	err = p.db.QueryRow("INSERT INTO products (name, price, stock, category_id, brand_id) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		req.Name, *req.Price, *req.Stock, *req.CategoryId, *req.BrandId).Scan(&pModel.Id)
	if err != nil {
		log.Printf("CreateProduct: %v", err)
		err = models.ErrServerError
		return
	}
	pModel.Name = req.Name
	pModel.Price = *req.Price
	pModel.Stock = *req.Stock
	pModel.CategoryId = *req.CategoryId
	pModel.BrandId = *req.BrandId
	return
}

func (p *ProductRepo) UpdateProductById(id int, req models.ProductRequest) (pModel models.Product_db, exists bool, err error) {
	res, e := p.db.Exec("UPDATE products SET name = $1, price = $2, stock = $3, category_id = $4, brand_id = $5 WHERE id = $6",
		req.Name, *req.Price, *req.Stock, *req.CategoryId, *req.BrandId, id)
	if e != nil {
		log.Printf("UpdateProductById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return
	}
	return p.GetProductById(id)
}

func (p *ProductRepo) DeleteProductById(id int) (deleted bool, err error) {
	res, e := p.db.Exec("DELETE FROM products WHERE id = $1", id)
	if e != nil {
		log.Printf("DeleteProductById: %v", e)
		err = models.ErrServerError
		return
	}
	affected, _ := res.RowsAffected()
	deleted = affected > 0
	return
}
