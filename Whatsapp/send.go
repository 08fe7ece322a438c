package Whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"MindCare/Constants"
)

// SendMessage delivers a WhatsApp text through the gateway sidecar. Booking
// confirmations, cancellations and reminders all go through here.
func SendMessage(phone string, message string) error {
	payload := map[string]string{
		"phone":   phone,
		"message": message,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := Constants.WhatsappGoService + "/send/message"
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/json")

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		log.Println(err)
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		respBody, _ := io.ReadAll(res.Body)
		log.Printf("whatsapp gateway returned %d: %s", res.StatusCode, string(respBody))
		return fmt.Errorf("whatsapp gateway returned %d", res.StatusCode)
	}
	return nil
}
