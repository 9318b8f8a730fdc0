package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TestServer - httptest-сервер поверх настоящего роутера приложения
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer запускает сервер на переданном роутере. Роутер собирает
// вызывающий (app.SetupRouter), иначе testutil зависел бы от app.
func NewTestServer(t *testing.T, db *gorm.DB, router *gin.Engine) *TestServer {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

// SendRequest отправляет запрос и возвращает ответ и тело строкой.
// body != nil кодируется в JSON.
func (ts *TestServer) SendRequest(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reqBody = bytes.NewBufferString(raw)
		} else {
			jsonBody, err := json.Marshal(body)
			if err != nil {
				t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
			}
			reqBody = bytes.NewBuffer(jsonBody)
		}
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}

	return res, string(resBodyBytes)
}

// DecodeJSON разбирает тело ответа в out
func DecodeJSON(t *testing.T, body string, out interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), out); err != nil {
		t.Fatalf("Не удалось распарсить JSON %q: %v", body, err)
	}
}
