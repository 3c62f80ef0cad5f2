package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplanner/internal/cook"
	"mealplanner/internal/dishes"
	"mealplanner/internal/history"
	"mealplanner/internal/inventory"
	"mealplanner/internal/plans"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := inventory.NewStore(inventory.NewInMemoryRepository())
	catalog := dishes.NewService(dishes.NewInMemoryRepository())
	mealLog := history.NewLog(history.NewInMemoryRepository())
	planStore := plans.NewService(plans.NewInMemoryRepository())
	engine := cook.NewEngine(store, catalog, mealLog)

	return NewServer(store, catalog, mealLog, planStore, engine)
}

func performRequest(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestParseInventoryPreviewDoesNotCommit(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodPost, "/api/parse-inventory", gin.H{
		"text": "白菜\t2\t颗",
		"save": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	parsed := decodeBody(t, w)["inventory"].([]interface{})
	require.Len(t, parsed, 1)

	w = performRequest(t, s, http.MethodGet, "/api/inventory", nil)
	items := decodeBody(t, w)["inventory"].([]interface{})
	assert.Empty(t, items)
}

func TestParseInventorySaveCommitsWithAccumulate(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodPost, "/api/parse-inventory", gin.H{
		"text": "白菜\t2\t颗",
		"save": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A second save of the same receipt doubles the quantity.
	w = performRequest(t, s, http.MethodPost, "/api/parse-inventory", gin.H{
		"text": "白菜\t2\t颗",
		"save": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, s, http.MethodGet, "/api/inventory", nil)
	items := decodeBody(t, w)["inventory"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "白菜", item["item"])
	assert.Equal(t, 4.0, item["quantity"])
}

func TestParseInventoryRejectsEmptyText(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodPost, "/api/parse-inventory", gin.H{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no text provided", decodeBody(t, w)["error"])
}

func TestInventoryCRUD(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodPost, "/api/inventory", gin.H{
		"item": "西红柿", "quantity": 3.0, "unit": "个", "category": "蔬菜",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// POST accumulates onto the existing row.
	w = performRequest(t, s, http.MethodPost, "/api/inventory", gin.H{
		"item": "西红柿", "quantity": 2.0, "unit": "个", "category": "蔬菜",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	item := decodeBody(t, w)["item"].(map[string]interface{})
	assert.Equal(t, 5.0, item["quantity"])

	// PUT replaces, and may rename.
	w = performRequest(t, s, http.MethodPut, "/api/inventory/西红柿", gin.H{
		"item": "番茄", "quantity": 10.0, "unit": "个", "category": "蔬菜",
	})
	require.Equal(t, http.StatusOK, w.Code)
	item = decodeBody(t, w)["item"].(map[string]interface{})
	assert.Equal(t, "番茄", item["item"])
	assert.Equal(t, 10.0, item["quantity"])

	w = performRequest(t, s, http.MethodDelete, "/api/inventory/番茄", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Deleting again still succeeds.
	w = performRequest(t, s, http.MethodDelete, "/api/inventory/番茄", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, s, http.MethodGet, "/api/inventory", nil)
	assert.Empty(t, decodeBody(t, w)["inventory"])
}

func TestAddInventoryItemRejectsBlankName(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodPost, "/api/inventory", gin.H{
		"item": "  ", "quantity": 1.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDishCRUD(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodPost, "/api/dishes", gin.H{
		"name": "红烧排骨", "category": "肉类", "ingredients": []string{"排骨", "生抽"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)["dish"].(map[string]interface{})
	id := created["id"].(string)
	require.NotEmpty(t, id)

	// Duplicate names are rejected.
	w = performRequest(t, s, http.MethodPost, "/api/dishes", gin.H{
		"name": "红烧排骨", "category": "肉类", "ingredients": []string{"排骨"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, s, http.MethodPut, "/api/dishes/"+id, gin.H{
		"name": "糖醋排骨", "category": "肉类", "ingredients": []string{"排骨", "醋"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, s, http.MethodGet, "/api/dishes", nil)
	all := decodeBody(t, w)["dishes"].([]interface{})
	require.Len(t, all, 1)
	assert.Equal(t, "糖醋排骨", all[0].(map[string]interface{})["name"])

	w = performRequest(t, s, http.MethodDelete, "/api/dishes/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, s, http.MethodDelete, "/api/dishes/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateDishUnknownID(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodPut, "/api/dishes/no-such-id", gin.H{
		"name": "糖醋排骨", "category": "肉类", "ingredients": []string{"排骨"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGeneratePlanReturnsBlockText(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodPost, "/api/inventory", gin.H{
		"item": "菠菜", "quantity": 2.0, "unit": "把", "category": "蔬菜",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = performRequest(t, s, http.MethodPost, "/api/dishes", gin.H{
		"name": "清炒菠菜", "category": "蔬菜", "ingredients": []string{"菠菜"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, s, http.MethodPost, "/api/generate-plan", gin.H{"start_day": 1})
	require.Equal(t, http.StatusOK, w.Code)

	text := decodeBody(t, w)["meal_plan"].(string)
	assert.Contains(t, text, "周一\n清炒菠菜")
}

func TestGeneratePlanEmptyStateYieldsPlaceholders(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodPost, "/api/generate-plan", gin.H{"start_day": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeBody(t, w)["meal_plan"].(string), "(待定)")
}

func TestGeneratePlanValidatesStartDay(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodPost, "/api/generate-plan", gin.H{"start_day": 7})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, s, http.MethodPost, "/api/generate-plan", gin.H{"start_day": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordMealConsumesInventory(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodPost, "/api/inventory", gin.H{
		"item": "西红柿", "quantity": 3.0, "unit": "个", "category": "蔬菜",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = performRequest(t, s, http.MethodPost, "/api/dishes", gin.H{
		"name": "番茄炒蛋", "category": "蛋类", "ingredients": []string{"西红柿", "蛋"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, s, http.MethodPost, "/api/past-meals", gin.H{
		"dish_name": "番茄炒蛋", "consume_ingredients": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	report := decodeBody(t, w)["report"].(map[string]interface{})
	unresolved := report["unresolved"].([]interface{})
	assert.Equal(t, []interface{}{"蛋"}, unresolved)

	w = performRequest(t, s, http.MethodGet, "/api/inventory", nil)
	items := decodeBody(t, w)["inventory"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, 2.0, items[0].(map[string]interface{})["quantity"])

	w = performRequest(t, s, http.MethodGet, "/api/past-meals", nil)
	meals := decodeBody(t, w)["past_meals"].([]interface{})
	require.Len(t, meals, 1)
	assert.Equal(t, "番茄炒蛋", meals[0].(map[string]interface{})["dish_name"])
}

func TestRecordMealRejectsBlankName(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodPost, "/api/past-meals", gin.H{"dish_name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMealPlanLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodPost, "/api/meal-plans", gin.H{
		"name": "本周计划", "plan": "周一\n红烧排骨",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Saving under the same name overwrites.
	w = performRequest(t, s, http.MethodPost, "/api/meal-plans", gin.H{
		"name": "本周计划", "plan": "周一\n清炒菠菜",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, s, http.MethodGet, "/api/meal-plans", nil)
	saved := decodeBody(t, w)["meal_plans"].([]interface{})
	require.Len(t, saved, 1)
	assert.Equal(t, "周一\n清炒菠菜", saved[0].(map[string]interface{})["plan"])

	w = performRequest(t, s, http.MethodDelete, "/api/meal-plans/本周计划", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, s, http.MethodDelete, "/api/meal-plans/本周计划", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveMealPlanValidation(t *testing.T) {
	s := newTestServer(t)

	w := performRequest(t, s, http.MethodPost, "/api/meal-plans", gin.H{
		"name": "", "plan": "周一\n红烧排骨",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, s, http.MethodPost, "/api/meal-plans", gin.H{
		"name": "本周计划", "plan": "",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
