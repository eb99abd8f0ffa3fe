package company

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCompanyModuleRegisterRoutes(t *testing.T) {
	r := gin.New()
	NewModule(&CompanyHandler{}).RegisterRoutes(r.Group("/views"))

	expected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/views/companies"},
		{http.MethodGet, "/views/companies/options"},
		{http.MethodGet, "/views/companies/:id"},
		{http.MethodPost, "/views/companies"},
		{http.MethodPut, "/views/companies/:id"},
		{http.MethodDelete, "/views/companies/:id"},
	}

	registered := make(map[string]bool)
	for _, ri := range r.Routes() {
		registered[ri.Method+":"+ri.Path] = true
	}
	for _, exp := range expected {
		if !registered[exp.method+":"+exp.path] {
			t.Errorf("expected route %s %s to be registered", exp.method, exp.path)
		}
	}
}

func TestNewModule_PanicsOnNilHandler(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil handler")
		}
	}()
	NewModule(nil)
}
