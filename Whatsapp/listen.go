package Whatsapp

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"MindCare/Constants"

	"github.com/gin-gonic/gin"
	whatsapp_chatbot_golang "github.com/green-api/whatsapp-chatbot-golang"
)

// Listen starts the inbound bot so patients can reply to reminders. Replies
// are only logged for now.
func Listen() {
	bot := whatsapp_chatbot_golang.NewBot(os.Getenv("GREEN_API_INSTANCE"), os.Getenv("GREEN_API_TOKEN"))

	bot.SetStartScene(StartScene{})

	bot.StartReceivingNotifications()
}

type StartScene struct {
}

func (s StartScene) Start(bot *whatsapp_chatbot_golang.Bot) {
	bot.IncomingMessageHandler(func(message *whatsapp_chatbot_golang.Notification) {
		text, _ := message.Text()
		log.Println("whatsapp reply:", text)
	})
}

func CheckLogin(c *gin.Context) {
	client := &http.Client{}

	url := Constants.WhatsappGoService + "/app/devices"
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		fmt.Println(err)
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		fmt.Println(err)
		c.String(http.StatusBadGateway, "Gateway Unreachable")
		return
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println(err)
		c.String(http.StatusBadGateway, "Gateway Unreachable")
		return
	}

	c.Data(res.StatusCode, "application/json", body)
}

func GetQRCode(c *gin.Context) {
	client := &http.Client{}

	url := Constants.WhatsappGoService + "/app/login"
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		fmt.Println(err)
	}

	res, err := client.Do(req)
	if err != nil {
		fmt.Println(err)
		c.String(http.StatusBadGateway, "Gateway Unreachable")
		return
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println(err)
		c.String(http.StatusBadGateway, "Gateway Unreachable")
		return
	}

	c.Data(res.StatusCode, "application/json", body)
}
