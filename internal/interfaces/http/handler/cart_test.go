package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartPayload struct {
	Lines []struct {
		ID        string `json:"id"`
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	} `json:"lines"`
	Total string `json:"total"`
}

func registerShopper(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"password": "warliart123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered authPayload
	decodeData(t, w, &registered)
	return registered.Tokens.AccessToken
}

func TestCart_AddIncrementAndTotal(t *testing.T) {
	env := setupEnv(t)
	admin := env.adminToken(t)
	token := registerShopper(t, env, "basket@example.in")

	product := createProduct(t, env, admin, map[string]interface{}{
		"name":     "Terracotta Diya Set",
		"category": "pottery",
		"base_mrp": "150.00",
	})

	addBody := map[string]interface{}{"product_id": product.ID}
	w := env.do(t, http.MethodPost, "/api/v1/cart/lines", token, addBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// same product and size folds into the existing line
	w = env.do(t, http.MethodPost, "/api/v1/cart/lines", token, addBody)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var c cartPayload
	decodeData(t, w, &c)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, "300", c.Total)
}

func TestCart_SetQuantityZeroRemovesLine(t *testing.T) {
	env := setupEnv(t)
	admin := env.adminToken(t)
	token := registerShopper(t, env, "emptier@example.in")

	product := createProduct(t, env, admin, map[string]interface{}{
		"name":     "Brass Bell",
		"category": "metalwork",
		"base_mrp": "220.00",
	})

	w := env.do(t, http.MethodPost, "/api/v1/cart/lines", token, map[string]interface{}{"product_id": product.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var c cartPayload
	w = env.do(t, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &c)
	require.Len(t, c.Lines, 1)

	w = env.do(t, http.MethodPatch, "/api/v1/cart/lines/"+c.Lines[0].ID, token,
		map[string]interface{}{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"removed":true`)

	w = env.do(t, http.MethodGet, "/api/v1/cart", token, nil)
	decodeData(t, w, &c)
	assert.Empty(t, c.Lines)
}

func TestCart_VariantProductRequiresSize(t *testing.T) {
	env := setupEnv(t)
	admin := env.adminToken(t)
	token := registerShopper(t, env, "sizes@example.in")

	product := createProduct(t, env, admin, map[string]interface{}{
		"name":     "Cotton Stole",
		"category": "textiles",
		"base_mrp": "0",
		"variants": []map[string]string{
			{"size": "standard", "price": "800.00"},
		},
	})

	w := env.do(t, http.MethodPost, "/api/v1/cart/lines", token, map[string]interface{}{"product_id": product.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "SIZE_REQUIRED")

	w = env.do(t, http.MethodPost, "/api/v1/cart/lines", token, map[string]interface{}{
		"product_id":    product.ID,
		"selected_size": "standard",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestCart_OutOfStockProductRejected(t *testing.T) {
	env := setupEnv(t)
	admin := env.adminToken(t)
	token := registerShopper(t, env, "stockless@example.in")

	product := createProduct(t, env, admin, map[string]interface{}{
		"name":     "Dhokra Figurine",
		"category": "metalwork",
		"base_mrp": "650.00",
	})

	w := env.do(t, http.MethodPatch, "/api/v1/admin/products/"+product.ID+"/stock", admin,
		map[string]interface{}{"in_stock": false})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/cart/lines", token, map[string]interface{}{"product_id": product.ID})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "OUT_OF_STOCK")
}

func TestCart_RequiresAuthentication(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
