package database

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bot-ofertas/internal/api"
)

func newTestDB(t *testing.T, handler http.HandlerFunc) *DB {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(api.New(server.URL, "LIC-123", "admin@example.com"))
}

func TestRequestCarriesLicenseHeaders(t *testing.T) {
	var gotLicense, gotEmail, gotProduct string
	db := newTestDB(t, func(w http.ResponseWriter, r *http.Request) {
		gotLicense = r.Header.Get("license-key")
		gotEmail = r.Header.Get("email")
		gotProduct = r.Header.Get("product-code")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": []interface{}{}})
	})

	if _, err := db.GetAllProducts(); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if gotLicense != "LIC-123" || gotEmail != "admin@example.com" || gotProduct != "DGAFF" {
		t.Errorf("headers de licença = (%q, %q, %q)", gotLicense, gotEmail, gotProduct)
	}
}

func TestGetLatestDiscountForProduct(t *testing.T) {
	db := newTestDB(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bot/products/7/discounts/latest" {
			t.Errorf("endpoint = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"id":                  11,
				"product_id":          7,
				"discount_percentage": 20,
				"original_price":      "100,00€",
				"discounted_price":    "80,00€",
				"currency":            "€",
			},
		})
	})

	d, err := db.GetLatestDiscountForProduct(7)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if d == nil {
		t.Fatal("desconto = nil, esperado a observação registrada")
	}
	if d.ID != 11 || d.DiscountPercentage != 20 || d.OriginalPrice != "100,00€" || d.DiscountedPrice != "80,00€" {
		t.Errorf("desconto = %+v", d)
	}
}

func TestGetLatestDiscountForProductNotFound(t *testing.T) {
	db := newTestDB(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Discount not found",
		})
	})

	d, err := db.GetLatestDiscountForProduct(7)
	if err != nil {
		t.Fatalf("ausência de desconto não é erro, recebido: %v", err)
	}
	if d != nil {
		t.Errorf("desconto = %+v, esperado nil", d)
	}
}

func TestAddProductDiscount(t *testing.T) {
	var gotBody map[string]interface{}
	db := newTestDB(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/bot/products/7/discounts" {
			t.Errorf("requisição = %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "discount_id": 42})
	})

	id, err := db.AddProductDiscount(7, 20, "100,00€", "80,00€", "€")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if id != 42 {
		t.Errorf("ID do desconto = %d, esperado 42", id)
	}
	if gotBody["discount_percentage"] != float64(20) || gotBody["original_price"] != "100,00€" {
		t.Errorf("corpo enviado = %v", gotBody)
	}
}

func TestGetProductByIDNotFound(t *testing.T) {
	db := newTestDB(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Product not found",
		})
	})

	p, err := db.GetProductByID(99)
	if err != nil {
		t.Fatalf("produto inexistente não é erro, recebido: %v", err)
	}
	if p != nil {
		t.Errorf("produto = %+v, esperado nil", p)
	}
}

func TestApproveMessage(t *testing.T) {
	db := newTestDB(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/config/approval-messages/5/approve" {
			t.Errorf("endpoint = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})

	ok, err := db.ApproveMessage(5, 42)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !ok {
		t.Error("aprovação = false, esperado true")
	}
}

func TestApproveMessageNotFound(t *testing.T) {
	db := newTestDB(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Approval message not found",
		})
	})

	ok, err := db.ApproveMessage(5, 42)
	if err != nil {
		t.Fatalf("mensagem inexistente não é erro, recebido: %v", err)
	}
	if ok {
		t.Error("aprovação = true para mensagem inexistente")
	}
}

func TestUpdateCronjobConfigRejectsShortIntervals(t *testing.T) {
	db := newTestDB(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("valores inválidos não devem chegar à API")
	})

	if err := db.UpdateCronjobConfig(4, 1, true, 42); err == nil {
		t.Error("intervalo de 4 minutos aceito, esperado erro")
	}
	if err := db.UpdateCronjobConfig(5, 0, true, 42); err == nil {
		t.Error("pausa de 0 minutos aceita, esperado erro")
	}
}

func TestAddCategoryAlreadyExists(t *testing.T) {
	db := newTestDB(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Category already exists",
		})
	})

	created, err := db.AddCategory("Eletrônicos", "", 42)
	if err != nil {
		t.Fatalf("duplicata não é erro, recebido: %v", err)
	}
	if created {
		t.Error("created = true para categoria duplicada")
	}
}

func TestUpdateProductDetailsSkipsEmptyUpdate(t *testing.T) {
	db := newTestDB(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("atualização vazia não deve gerar requisição")
	})

	if err := db.UpdateProductDetails(7, "", ""); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
}
