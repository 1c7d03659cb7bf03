// Command quillsvc exposes the quill document operations over HTTP.
//
// Configuration comes from the environment (a .env file is loaded when
// present):
//
//	QUILL_SERVICE_URL    base URL of the document service (required)
//	QUILL_SERVICE_TOKEN  bearer token for the document service
//	QUILL_ADDR           listen address (default ":8080")
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/tsawler/quill"
	"github.com/tsawler/quill/service"
)

func main() {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	baseURL := os.Getenv("QUILL_SERVICE_URL")
	if baseURL == "" {
		log.Fatal("QUILL_SERVICE_URL is required")
	}
	token := os.Getenv("QUILL_SERVICE_TOKEN")
	addr := os.Getenv("QUILL_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	svc := service.NewClient(baseURL, token)
	app := &application{editor: quill.New(svc)}

	r := mux.NewRouter()
	r.Use(requestID)
	r.HandleFunc("/v1/documents/{id}/batch", app.executeBatch).Methods(http.MethodPost)
	r.HandleFunc("/v1/documents/{id}/tables", app.createTable).Methods(http.MethodPost)
	r.HandleFunc("/v1/documents/{id}/tables/{index}", app.debugTable).Methods(http.MethodGet)
	r.HandleFunc("/v1/documents/{id}/tables/{index}/populate", app.populateTable).Methods(http.MethodPost)
	r.HandleFunc("/v1/documents/{id}/structure", app.inspectStructure).Methods(http.MethodGet)
	r.HandleFunc("/v1/documents/{id}/header-footer", app.updateHeaderFooter).Methods(http.MethodPut)
	r.HandleFunc("/v1/documents/{id}/header-footer", app.createHeaderFooter).Methods(http.MethodPost)
	r.HandleFunc("/v1/documents/{id}/images", app.insertImage).Methods(http.MethodPost)
	r.HandleFunc("/v1/documents/{id}/bullets", app.applyBullets).Methods(http.MethodPost)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	log.Printf("quillsvc listening on %s (service %s)", addr, baseURL)
	log.Fatal(srv.ListenAndServe())
}
