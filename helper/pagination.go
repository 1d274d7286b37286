package helper

import (
	"net/http"
	"strconv"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

// ParsePage reads the recordPerPage and page query parameters.
func ParsePage(r *http.Request) models.Page {
	recordPerPage, err := strconv.Atoi(r.URL.Query().Get("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = models.DefaultPerPage
	}
	if recordPerPage > models.MaxPerPage {
		recordPerPage = models.MaxPerPage
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	if page > models.MaxPage {
		page = models.MaxPage
	}

	return models.Page{Page: page, PerPage: recordPerPage}
}
