package handlers

import (
	"net/http"

	"qc-backend/internal/services"
	"qc-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type LanguageHandler struct {
	Service *services.LanguageService
}

func NewLanguageHandler(service *services.LanguageService) *LanguageHandler {
	return &LanguageHandler{Service: service}
}

func (h *LanguageHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.Languages())
}

func (h *LanguageHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	lang := mux.Vars(r)["lang"]
	utils.JSON(w, http.StatusOK, h.Service.Table(lang))
}

// Translate resolves one key; extra query parameters become {param}
// substitutions. Unknown keys return the key itself.
func (h *LanguageHandler) Translate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lang := vars["lang"]
	key := vars["key"]

	params := make(map[string]string)
	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			params[name] = values[0]
		}
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"key":  key,
		"text": h.Service.Translate(lang, key, params),
	})
}
