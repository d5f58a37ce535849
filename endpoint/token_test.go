package endpoint

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ariebrainware/tripwire/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateToken_DeceptiveURLDefaultTemplate(t *testing.T) {
	env := newTestEnv(t, nil)

	w, resp := mustRequest(t, env.router, requestSpec{
		method:      http.MethodPost,
		requestPath: "/api/tokens",
		body:        map[string]string{"name": "  Payroll   Export ", "kind": "DeceptiveURL"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	data := dataMap(t, resp)
	id := data["id"].(string)
	assert.True(t, strings.HasPrefix(id, "token-"))
	assert.Equal(t, "Payroll Export", data["name"])
	assert.Equal(t, testBaseURL+"/trap?token_id="+id, data["triggerValue"])
	assert.Equal(t, "Active", data["status"])
	assert.Equal(t, float64(0), data["alertCount"])

	stored, err := env.store.GetToken(id)
	require.NoError(t, err)
	assert.Equal(t, model.KindDeceptiveURL, stored.Kind)
}

func TestCreateToken_CustomTemplate(t *testing.T) {
	env := newTestEnv(t, nil)

	w, resp := mustRequest(t, env.router, requestSpec{
		method:      http.MethodPost,
		requestPath: "/api/tokens",
		body: map[string]string{
			"name":         "Backup creds",
			"kind":         "DeceptiveURL",
			"triggerValue": "https://files.example.com/dl?ref={token_id}",
			"displayValue": "https://files.example.com/backup.csv",
		},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	data := dataMap(t, resp)
	assert.Equal(t, "https://files.example.com/dl?ref="+data["id"].(string), data["triggerValue"])
	assert.Equal(t, "https://files.example.com/backup.csv", data["displayValue"])
}

func TestCreateToken_TrackedFileUsesPixel(t *testing.T) {
	env := newTestEnv(t, nil)

	w, resp := mustRequest(t, env.router, requestSpec{
		method:      http.MethodPost,
		requestPath: "/api/tokens",
		body:        map[string]string{"name": "Chimera.docx", "kind": "TrackedFile"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	data := dataMap(t, resp)
	assert.Equal(t, testBaseURL+"/pixel/"+data["id"].(string)+".gif", data["triggerValue"])
}

func TestCreateToken_Invalid(t *testing.T) {
	env := newTestEnv(t, nil)

	cases := []struct {
		name string
		body interface{}
	}{
		{"malformed json", "{not json"},
		{"missing name", map[string]string{"kind": "DeceptiveURL"}},
		{"blank name", map[string]string{"name": "   ", "kind": "DeceptiveURL"}},
		{"unknown kind", map[string]string{"name": "x", "kind": "QRCode"}},
		{"template without placeholder", map[string]string{"name": "x", "kind": "DeceptiveURL", "triggerValue": "https://example.com/static"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, resp := mustRequest(t, env.router, requestSpec{
				method:      http.MethodPost,
				requestPath: "/api/tokens",
				body:        tc.body,
			})
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, resp["success"])
		})
	}
	assert.Empty(t, env.store.ListTokens())
}

func TestCreateToken_StorageUnavailable(t *testing.T) {
	env := newTestEnv(t, nil)
	env.adapter.SetFailing(true)

	w, _ := mustRequest(t, env.router, requestSpec{
		method:      http.MethodPost,
		requestPath: "/api/tokens",
		body:        map[string]string{"name": "x", "kind": "DeceptiveURL"},
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	env.adapter.SetFailing(false)
	assert.Empty(t, env.store.ListTokens())
}

func TestListAndGetTokens(t *testing.T) {
	env := newTestEnv(t, []model.HoneyToken{
		testToken("tok-1", model.TokenActive),
		testToken("tok-2", model.TokenDisabled),
	})

	w, resp := mustRequest(t, env.router, requestSpec{method: http.MethodGet, requestPath: "/api/tokens"})
	require.Equal(t, http.StatusOK, w.Code)
	list := dataList(t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, "tok-1", list[0].(map[string]interface{})["id"])

	w, resp = mustRequest(t, env.router, requestSpec{method: http.MethodGet, requestPath: "/api/tokens/tok-2"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Disabled", dataMap(t, resp)["status"])

	w, _ = mustRequest(t, env.router, requestSpec{method: http.MethodGet, requestPath: "/api/tokens/missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTokenStatus(t *testing.T) {
	env := newTestEnv(t, []model.HoneyToken{testToken("tok-1", model.TokenActive)})

	w, resp := mustRequest(t, env.router, requestSpec{
		method:      http.MethodPatch,
		requestPath: "/api/tokens/tok-1/status",
		body:        map[string]string{"status": "disabled"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Disabled", dataMap(t, resp)["status"])

	tok, err := env.store.GetToken("tok-1")
	require.NoError(t, err)
	assert.Equal(t, model.TokenDisabled, tok.Status)

	w, _ = mustRequest(t, env.router, requestSpec{
		method:      http.MethodPatch,
		requestPath: "/api/tokens/tok-1/status",
		body:        map[string]string{"status": "Paused"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = mustRequest(t, env.router, requestSpec{
		method:      http.MethodPatch,
		requestPath: "/api/tokens/nope/status",
		body:        map[string]string{"status": "Active"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTokenKeepsAlerts(t *testing.T) {
	env := newTestEnv(t, []model.HoneyToken{testToken("tok-1", model.TokenActive)})

	w, _ := mustRequest(t, env.router, requestSpec{method: http.MethodGet, requestPath: "/trap?token_id=tok-1"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w, _ = mustRequest(t, env.router, requestSpec{method: http.MethodDelete, requestPath: "/api/tokens/tok-1"})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = mustRequest(t, env.router, requestSpec{method: http.MethodDelete, requestPath: "/api/tokens/tok-1"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp := mustRequest(t, env.router, requestSpec{method: http.MethodGet, requestPath: "/api/tokens/tok-1/alerts"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataList(t, resp), 1)
	assert.Len(t, env.store.ListAlerts(), 1)
}
