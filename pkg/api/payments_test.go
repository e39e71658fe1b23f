package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePaymentLink_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/widget/wt_test/stripe/create-payment-link", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"amount": 2.5}`, string(body))

		fmt.Fprint(w, `{"paymentUrl": "https://pay.example.com/x", "projectName": "Clean Water"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "wt_test", nil)
	link, err := client.CreatePaymentLink(context.Background(), 2.5)

	assert.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/x", link.PaymentURL)
	assert.Equal(t, "Clean Water", link.ProjectName)
}

func TestCreatePaymentLink_ErrorBodyMessageIsVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"message": "Card declined"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "wt_test", nil)
	link, err := client.CreatePaymentLink(context.Background(), 2.5)

	assert.Nil(t, link)
	assert.EqualError(t, err, "Card declined")
}

func TestCreatePaymentLink_ErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "wt_test", nil)
	_, err := client.CreatePaymentLink(context.Background(), 2.5)

	assert.EqualError(t, err, "payment request failed: 502 Bad Gateway")
}

func TestCreatePaymentLink_MissingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "wt_test", nil)
	link, err := client.CreatePaymentLink(context.Background(), 2.5)

	assert.Nil(t, link)
	assert.EqualError(t, err, "no payment URL in response")
}

func TestInitiateMobileMoneyPayment_Success(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/widget/wt_test/mobileMoney/initiate-payment", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"paymentToken": "mm_abc123"}`)
	}))
	defer srv.Close()

	name := "Ama Mensah"
	client := NewClient(srv.URL, "wt_test", nil)
	payment, err := client.InitiateMobileMoneyPayment(context.Background(), MobileMoneyRequest{
		Amount:         3,
		MobileNumber:   "0240000000",
		MobileProvider: "MTN",
		CustomerName:   &name,
	})

	assert.NoError(t, err)
	assert.Equal(t, "mm_abc123", payment.PaymentToken)
	assert.Equal(t, "Ama Mensah", got["customerName"])
	assert.Equal(t, "0240000000", got["mobileNumber"])
	assert.Equal(t, "MTN", got["mobileProvider"])
}

func TestInitiateMobileMoneyPayment_AnonymousSendsNullName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"amount":1.5,"mobileNumber":"0240000000","mobileProvider":"Vodafone","customerName":null}`, string(body))
		fmt.Fprint(w, `{"paymentToken": "mm_anon"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "wt_test", nil)
	payment, err := client.InitiateMobileMoneyPayment(context.Background(), MobileMoneyRequest{
		Amount:         1.5,
		MobileNumber:   "0240000000",
		MobileProvider: "Vodafone",
	})

	assert.NoError(t, err)
	assert.Equal(t, "mm_anon", payment.PaymentToken)
}

func TestInitiateMobileMoneyPayment_ErrorBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"message": "Unsupported provider"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "wt_test", nil)
	_, err := client.InitiateMobileMoneyPayment(context.Background(), MobileMoneyRequest{Amount: 1})

	assert.EqualError(t, err, "Unsupported provider")
}
