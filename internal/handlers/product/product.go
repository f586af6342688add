package product

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/cache"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/database"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/models"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/services"
)

const productColumns = `product_id, name, description, price, original_price, category, in_stock,
	lengths, lace_sizes, densities, shipping_fee, delivery_estimate, image_urls, created_at, updated_at`

// productInput accepts the admin form. InStock is interface{} on purpose:
// clients send it as a boolean, a string or a number and NormalizeInStock
// settles it.
type productInput struct {
	Name             string      `json:"name" binding:"required"`
	Description      string      `json:"description"`
	Price            float64     `json:"price" binding:"required"`
	OriginalPrice    *float64    `json:"original_price"`
	Category         string      `json:"category"`
	InStock          interface{} `json:"in_stock"`
	Lengths          []string    `json:"lengths"`
	LaceSizes        []string    `json:"lace_sizes"`
	Densities        []string    `json:"densities"`
	ShippingFee      float64     `json:"shipping_fee"`
	DeliveryEstimate string      `json:"delivery_estimate"`
	ImageURLs        []string    `json:"image_urls"`
}

func scanProduct(scan func(dest ...interface{}) error) (models.Product, error) {
	var p models.Product
	err := scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice, &p.Category, &p.InStock,
		&p.Lengths, &p.LaceSizes, &p.Densities, &p.ShippingFee, &p.DeliveryEstimate, &p.ImageURLs,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func CreateProduct(c *gin.Context) {
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetShopSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	now := time.Now()
	p := models.Product{
		ID:               gocql.TimeUUID(),
		Name:             in.Name,
		Description:      in.Description,
		Price:            in.Price,
		OriginalPrice:    in.OriginalPrice,
		Category:         in.Category,
		InStock:          NormalizeInStock(in.InStock),
		Lengths:          in.Lengths,
		LaceSizes:        in.LaceSizes,
		Densities:        in.Densities,
		ShippingFee:      in.ShippingFee,
		DeliveryEstimate: in.DeliveryEstimate,
		ImageURLs:        in.ImageURLs,
		CreatedAt:        &now,
		UpdatedAt:        &now,
	}

	query := `INSERT INTO products (` + productColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if err := session.Query(query, p.ID, p.Name, p.Description, p.Price, p.OriginalPrice, p.Category,
		p.InStock, p.Lengths, p.LaceSizes, p.Densities, p.ShippingFee, p.DeliveryEstimate, p.ImageURLs,
		p.CreatedAt, p.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Product creation failed: " + err.Error()})
		return
	}

	cache.InvalidateProductList()
	go services.IndexProduct(p)

	c.JSON(http.StatusOK, p)
}

func GetAllProducts(c *gin.Context) {
	// Serve from Redis when the list cache is warm
	if val := cache.GetProductList(); val != "" {
		var cached []models.Product
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	session, err := database.GetShopSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	iter := session.Query(`SELECT ` + productColumns + ` FROM products`).Iter()

	products := []models.Product{}
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice, &p.Category, &p.InStock,
		&p.Lengths, &p.LaceSizes, &p.Densities, &p.ShippingFee, &p.DeliveryEstimate, &p.ImageURLs,
		&p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{} // reset for next row
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Product read failed: " + err.Error()})
		return
	}

	if data, err := json.Marshal(products); err == nil {
		cache.SetProductList(data)
	}

	c.JSON(http.StatusOK, products)
}

func GetProduct(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	session, err := database.GetShopSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	q := session.Query(`SELECT `+productColumns+` FROM products WHERE product_id = ?`, id)
	p, err := scanProduct(q.Scan)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func UpdateProduct(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetShopSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	// Confirm the row exists; updates are full overwrites, last write wins
	q := session.Query(`SELECT `+productColumns+` FROM products WHERE product_id = ?`, id)
	existing, err := scanProduct(q.Scan)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	now := time.Now()
	p := models.Product{
		ID:               id,
		Name:             in.Name,
		Description:      in.Description,
		Price:            in.Price,
		OriginalPrice:    in.OriginalPrice,
		Category:         in.Category,
		InStock:          NormalizeInStock(in.InStock),
		Lengths:          in.Lengths,
		LaceSizes:        in.LaceSizes,
		Densities:        in.Densities,
		ShippingFee:      in.ShippingFee,
		DeliveryEstimate: in.DeliveryEstimate,
		ImageURLs:        in.ImageURLs,
		CreatedAt:        existing.CreatedAt,
		UpdatedAt:        &now,
	}

	query := `UPDATE products SET name = ?, description = ?, price = ?, original_price = ?, category = ?,
		in_stock = ?, lengths = ?, lace_sizes = ?, densities = ?, shipping_fee = ?, delivery_estimate = ?,
		image_urls = ?, updated_at = ? WHERE product_id = ?`
	if err := session.Query(query, p.Name, p.Description, p.Price, p.OriginalPrice, p.Category, p.InStock,
		p.Lengths, p.LaceSizes, p.Densities, p.ShippingFee, p.DeliveryEstimate, p.ImageURLs,
		p.UpdatedAt, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Product update failed: " + err.Error()})
		return
	}

	cache.InvalidateProductList()
	go services.IndexProduct(p)

	c.JSON(http.StatusOK, p)
}

func DeleteProduct(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	session, err := database.GetShopSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	if err := session.Query(`DELETE FROM products WHERE product_id = ?`, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Product deletion failed: " + err.Error()})
		return
	}

	cache.InvalidateProductList()
	go services.RemoveProductFromIndex(id.String())

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "id": id.String()})
}

func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'q' parameter"})
		return
	}

	// Elasticsearch first
	if results, err := services.SearchProducts(query); err == nil && len(results) > 0 {
		c.JSON(http.StatusOK, results)
		return
	}

	// Fallback: full scan with in-memory filtering when ES is empty or down
	session, err := database.GetShopSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	iter := session.Query(`SELECT ` + productColumns + ` FROM products`).Iter()

	products := []models.Product{}
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice, &p.Category, &p.InStock,
		&p.Lengths, &p.LaceSizes, &p.Densities, &p.ShippingFee, &p.DeliveryEstimate, &p.ImageURLs,
		&p.CreatedAt, &p.UpdatedAt) {
		if containsIgnoreCase(p.Name, query) || containsIgnoreCase(p.Description, query) || containsIgnoreCase(p.Category, query) {
			products = append(products, p)
		}
		p = models.Product{}
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
