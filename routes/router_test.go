package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"formbuilder.link/configs"
	"formbuilder.link/models"
	"formbuilder.link/pkg/testdb"
	"formbuilder.link/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T, adminKeyHash string) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testdb.OpenSeeded(t)
	cfg := &configs.AppConfig{
		Env:          configs.EnvProduction,
		AdminKeyHash: adminKeyHash,
		BodyLimit:    4 * 1024 * 1024,
		AllowOrigins: "*",
	}
	app := NewApp(cfg)
	SetupRoutes(app, db, cfg)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return send(t, app, req)
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func fieldTypeID(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	ft, err := repositories.NewFieldTypeRepository(db).FindByName(context.Background(), name)
	require.NoError(t, err)
	return ft.ID
}

func idOf(t *testing.T, body map[string]interface{}) uint {
	t.Helper()
	id, ok := body["id"].(float64)
	require.True(t, ok, "yanıtta id yok: %v", body)
	return uint(id)
}

func TestHealthz(t *testing.T) {
	app, _ := newTestApp(t, "")

	status, body := doJSON(t, app, http.MethodGet, "/healthz", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	app, _ := newTestApp(t, "")

	status, body := doJSON(t, app, http.MethodGet, "/nope", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.NotEmpty(t, body["error"])
}

func TestAdminRoutesRequireKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	app, _ := newTestApp(t, string(hash))

	status, _ := doJSON(t, app, http.MethodGet, "/api/field-types", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	req := httptest.NewRequest(http.MethodGet, "/api/field-types", nil)
	req.Header.Set("X-API-Key", "wrong")
	status, _ = send(t, app, req)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	req = httptest.NewRequest(http.MethodGet, "/api/field-types", nil)
	req.Header.Set("X-API-Key", "s3cret")
	status, body := send(t, app, req)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 11)

	// public rotalar anahtarsız çalışır
	status, _ = doJSON(t, app, http.MethodGet, "/f/missing", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestFormLifecycleOverHTTP(t *testing.T) {
	app, db := newTestApp(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/forms", strings.NewReader(`{"name":"Contact Us"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set("X-User-ID", "42")
	status, form := send(t, app, req)
	require.Equal(t, fiber.StatusCreated, status, form)
	assert.Equal(t, "contact-us", form["slug"])
	assert.Equal(t, "draft", form["status"])
	assert.Equal(t, float64(42), form["created_by_id"])
	formID := idOf(t, form)

	status, section := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/forms/%d/sections", formID),
		map[string]interface{}{"title": "About you"})
	require.Equal(t, fiber.StatusCreated, status, section)
	sectionID := idOf(t, section)

	status, nameField := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/forms/%d/fields", formID),
		map[string]interface{}{
			"field_type_id": fieldTypeID(t, db, "Short Text"),
			"label":         "Name",
			"section_id":    sectionID,
		})
	require.Equal(t, fiber.StatusCreated, status, nameField)
	nameID := idOf(t, nameField)

	status, topics := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/forms/%d/fields", formID),
		map[string]interface{}{
			"field_type_id": fieldTypeID(t, db, "Checkboxes"),
			"label":         "Topics",
			"options":       "Sales\n\n Support \n",
		})
	require.Equal(t, fiber.StatusCreated, status, topics)
	topicsID := idOf(t, topics)
	assert.Equal(t, float64(2), topics["order"])

	status, detail := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/fields/%d", topicsID), nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, detail["has_options"])

	// taslak form public değildir
	status, _ = doJSON(t, app, http.MethodGet, "/f/contact-us", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = doJSON(t, app, http.MethodPost, "/f/contact-us/submit", map[string]interface{}{"values": map[string]interface{}{}})
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/forms/%d", formID),
		map[string]interface{}{"status": "published"})
	require.Equal(t, fiber.StatusOK, status)

	status, public := doJSON(t, app, http.MethodGet, "/f/contact-us", nil)
	require.Equal(t, fiber.StatusOK, status)
	sections := public["sections"].([]interface{})
	require.Len(t, sections, 1)
	sectionFields := sections[0].(map[string]interface{})["fields"].([]interface{})
	require.Len(t, sectionFields, 1)
	assert.Equal(t, fmt.Sprintf("field_%d", nameID), sectionFields[0].(map[string]interface{})["name"])
	loose := public["fields"].([]interface{})
	require.Len(t, loose, 1)
	assert.Len(t, loose[0].(map[string]interface{})["choices"], 2)

	// form-encoded gönderim
	formValues := url.Values{}
	formValues.Set(fmt.Sprintf("field_%d", nameID), "Ada")
	formValues.Add(fmt.Sprintf("field_%d", topicsID), "Sales")
	formValues.Add(fmt.Sprintf("field_%d", topicsID), "Support")
	req = httptest.NewRequest(http.MethodPost, "/f/contact-us/submit", strings.NewReader(formValues.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	status, receipt := send(t, app, req)
	require.Equal(t, fiber.StatusCreated, status, receipt)
	assert.Equal(t, models.DefaultSuccessMessage, receipt["success_message"])

	// JSON gönderim
	status, _ = doJSON(t, app, http.MethodPost, "/f/contact-us/submit", map[string]interface{}{
		"values": map[string]interface{}{
			fmt.Sprint(nameID): "Grace",
		},
	})
	require.Equal(t, fiber.StatusCreated, status)

	var values []models.FormFieldValue
	require.NoError(t, db.Order("submission_id asc, field_id asc").Find(&values).Error)
	require.Len(t, values, 4)
	assert.Equal(t, "Ada", values[0].Value)
	assert.Equal(t, "Sales,Support", values[1].Value)
	assert.Equal(t, "Grace", values[2].Value)
	assert.Equal(t, "", values[3].Value)

	status, list := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/forms/%d/submissions", formID), nil)
	require.Equal(t, fiber.StatusOK, status)
	meta := list["meta"].(map[string]interface{})
	assert.Equal(t, float64(2), meta["total_items"])

	// field type kullanımdayken silinemez
	status, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/field-types/%d", fieldTypeID(t, db, "Checkboxes")), nil)
	assert.Equal(t, fiber.StatusConflict, status)

	// yayındaki form taslağa dönemez
	status, body := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/forms/%d", formID),
		map[string]interface{}{"status": "draft"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.NotEmpty(t, body["error"])

	status, _ = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/forms/%d", formID),
		map[string]interface{}{"status": "archived"})
	require.Equal(t, fiber.StatusOK, status)
	status, _ = doJSON(t, app, http.MethodPost, "/f/contact-us/submit", map[string]interface{}{"values": map[string]interface{}{}})
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/forms/%d", formID), nil)
	assert.Equal(t, fiber.StatusNoContent, status)
	status, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/forms/%d", formID), nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestReorderAndSectionDeleteOverHTTP(t *testing.T) {
	app, db := newTestApp(t, "")

	status, form := doJSON(t, app, http.MethodPost, "/api/forms", map[string]interface{}{"name": "Survey"})
	require.Equal(t, fiber.StatusCreated, status)
	formID := idOf(t, form)

	status, section := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/forms/%d/sections", formID),
		map[string]interface{}{"title": "Part 1"})
	require.Equal(t, fiber.StatusCreated, status)
	sectionID := idOf(t, section)

	textID := fieldTypeID(t, db, "Short Text")
	ids := make([]uint, 0, 2)
	for _, label := range []string{"A", "B"} {
		status, field := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/forms/%d/fields", formID),
			map[string]interface{}{"field_type_id": textID, "label": label, "section_id": sectionID})
		require.Equal(t, fiber.StatusCreated, status)
		ids = append(ids, idOf(t, field))
	}

	status, reordered := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/forms/%d/fields/reorder", formID),
		map[string]interface{}{"fields": []map[string]interface{}{
			{"id": ids[0], "order": 2},
			{"id": ids[1], "order": 1},
			{"id": 9999, "order": 5},
		}})
	require.Equal(t, fiber.StatusOK, status)
	fields := reordered["fields"].([]interface{})
	require.Len(t, fields, 2)
	assert.Equal(t, "B", fields[0].(map[string]interface{})["label"])

	status, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/sections/%d", sectionID), nil)
	require.Equal(t, fiber.StatusNoContent, status)

	status, field := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/fields/%d", ids[0]), nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Nil(t, field["field"].(map[string]interface{})["section_id"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/forms/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	status, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/forms/%d/fields", formID),
		map[string]interface{}{"field_type_id": 9999, "label": "X"})
	assert.Equal(t, fiber.StatusNotFound, status)
}
