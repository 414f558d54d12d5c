package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/Bigsouley03/cat-payment-app/internal/model"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// Demo receipts matching the dashboard's offline sample set. Useful to fill
// a fresh install before showing the app around.
var demoReceipts = []model.ReceiptCreateRequest{
	{
		NomComplet:    "Ahmed Benali",
		PaymentType:   "cash",
		Amount:        3500,
		DossierNumber: "DOS-2024-001",
		Date:          "2024-01-15",
		Classe:        "Licence 1",
		PhoneNumber:   "+212 600 123 456",
		PaymentReason: "Frais de scolarité",
	},
	{
		NomComplet:    "Fatima Zahra Alaoui",
		PaymentType:   "cheque",
		ChequeDetails: "Chèque N° 1234567 - Banque Populaire",
		Amount:        5000,
		DossierNumber: "DOS-2024-002",
		Date:          "2024-01-18",
		Classe:        "Licence 2",
		PhoneNumber:   "+212 600 789 012",
		PaymentReason: "Frais d'inscription",
	},
	{
		NomComplet:    "Youssef El Amrani",
		PaymentType:   "virement",
		Amount:        2500,
		DossierNumber: "DOS-2024-003",
		Date:          "2024-01-20",
		Classe:        "Licence 3",
		PhoneNumber:   "+212 600 345 678",
		PaymentReason: "Frais de transport",
	},
	{
		NomComplet:    "Sara Benhaddou",
		PaymentType:   "cash",
		Amount:        4200,
		DossierNumber: "DOS-2024-004",
		Date:          "2024-01-22",
		Classe:        "Master 1",
		PaymentReason: "Frais de cantine",
	},
	{
		NomComplet:    "Karim Tazi",
		PaymentType:   "cheque",
		ChequeDetails: "Chèque N° 9876543 - BMCE",
		Amount:        6000,
		DossierNumber: "DOS-2024-005",
		Date:          "2024-02-01",
		Classe:        "Master 2",
		PhoneNumber:   "+212 600 901 234",
		PaymentReason: "Frais de scolarité",
	},
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8000/api", "API base URL")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	client := &fasthttp.Client{
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	created := 0
	for _, r := range demoReceipts {
		body, err := json.Marshal(r)
		if err != nil {
			log.Error().Err(err).Str("payer", r.NomComplet).Msg("failed to encode receipt")
			continue
		}

		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()
		req.SetRequestURI(*baseURL + "/storeReceipt")
		req.Header.SetMethod(fasthttp.MethodPost)
		req.Header.SetContentType("application/json")
		req.SetBody(body)

		err = client.Do(req, resp)
		status := resp.StatusCode()
		respBody := string(resp.Body())
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)

		if err != nil {
			log.Error().Err(err).Str("payer", r.NomComplet).Msg("request failed")
			continue
		}
		if status != fasthttp.StatusCreated {
			log.Warn().Int("status", status).Str("payer", r.NomComplet).Str("body", respBody).Msg("receipt rejected")
			continue
		}

		created++
		log.Info().Str("payer", r.NomComplet).Float64("amount", r.Amount).Msg("receipt created")
	}

	log.Info().Int("created", created).Int("total", len(demoReceipts)).Msg("seeding done")
}
