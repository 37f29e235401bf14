package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/inventory-tracker/backend/internal/integration/persistence/model"
	"github.com/inventory-tracker/backend/test/integration/mock"
)

var placeholderPattern = regexp.MustCompile(`\{\{(category|source|item)_id:([^}]+)\}\}`)

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func (t *testContext) theCurrentTimeIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	t.timeMock.SetCurrentTime(now)
	return nil
}

func (t *testContext) aCategoryExistsWithName(name string) error {
	category := &model.CategoryModel{Name: name}
	if err := t.db.DbConn.Create(category).Error; err != nil {
		return err
	}
	t.categoryIDs[name] = category.ID
	return nil
}

func (t *testContext) aSourceExistsWithName(name string) error {
	source := &model.SourceModel{Name: name}
	if err := t.db.DbConn.Create(source).Error; err != nil {
		return err
	}
	t.sourceIDs[name] = source.ID
	return nil
}

// theFollowingItemsExist inserts items straight into the database so that
// malformed sold_at values can be seeded. Recognised columns are name,
// purchase_price, selling_price, status, sold_at, category, source and
// consignment.
func (t *testContext) theFollowingItemsExist(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("items table needs a header and at least one row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	for _, row := range table.Rows[1:] {
		item := &model.ItemModel{Status: "available"}
		for i, cell := range row.Cells {
			if err := t.setItemColumn(item, header[i], cell.Value); err != nil {
				return err
			}
		}
		if err := t.db.DbConn.Create(item).Error; err != nil {
			return err
		}
		t.itemIDs[item.Name] = item.ID
	}
	return nil
}

func (t *testContext) setItemColumn(item *model.ItemModel, column, value string) error {
	if value == "" {
		return nil
	}

	switch column {
	case "name":
		item.Name = value
	case "purchase_price", "selling_price":
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", column, value, err)
		}
		if column == "purchase_price" {
			item.PurchasePrice = amount
		} else {
			item.SellingPrice = amount
		}
	case "status":
		item.Status = value
	case "sold_at":
		item.SoldAt = &value
	case "category":
		id, ok := t.categoryIDs[value]
		if !ok {
			return fmt.Errorf("category %q was not created", value)
		}
		item.CategoryID = &id
	case "source":
		id, ok := t.sourceIDs[value]
		if !ok {
			return fmt.Errorf("source %q was not created", value)
		}
		item.SourceID = &id
	case "consignment":
		consignment, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid consignment flag %q: %w", value, err)
		}
		item.IsConsignment = consignment
	default:
		return fmt.Errorf("unknown item column %q", column)
	}
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders resolves {{category_id:Name}}, {{source_id:Name}},
// {{item_id:Name}} and {{item_id}} (the last item created over the API).
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{item_id}}", strconv.FormatInt(t.lastItemID, 10))

	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := placeholderPattern.FindStringSubmatch(match)
		var ids map[string]int64
		switch parts[1] {
		case "category":
			ids = t.categoryIDs
		case "source":
			ids = t.sourceIDs
		default:
			ids = t.itemIDs
		}
		if id, ok := ids[parts[2]]; ok {
			return strconv.FormatInt(id, 10)
		}
		return match
	})
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture the created item so later steps can address it.
	if method == http.MethodPost && strings.HasPrefix(path, "/api/v1/items") {
		if id, ok := responseBody["id"].(float64); ok {
			t.lastItemID = int64(id)
			if name, ok := responseBody["name"].(string); ok {
				t.itemIDs[name] = t.lastItemID
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveElements(field string, quantity int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	elements, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array: %v", field, body)
	}
	if len(elements) != quantity {
		return fmt.Errorf("field '%s' expected %d elements, got %d", field, quantity, len(elements))
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) theStatsCacheShouldContainEntries(quantity int) error {
	count, err := mock.CountKeys(t.redis, "stats:*")
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d stats cache entries, got %d", quantity, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	var field any = objectMap
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
