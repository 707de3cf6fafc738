package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gungnir/internal/config"
	"gungnir/internal/mq"
)

const sendTimeout = 10 * time.Second

func main() {
	cfg := config.Load("")
	brokers := flag.String("brokers", strings.Join(cfg.Brokers, ","), "Comma-separated Kafka brokers")
	topic := flag.String("topic", cfg.OrdersTopic, "Topic receiving order events")
	flag.Parse()

	producer := mq.NewOrderProducer(strings.Split(*brokers, ","), *topic)
	defer producer.Close()

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("=== Send Order ===")

		username := prompt(in, "Enter username: ")

		var symbol string
		for {
			symbol = prompt(in, "Enter financial ticker symbol (e.g. 'XYZ'): ")
			if isUpperSymbol(symbol) {
				break
			}
			fmt.Println("Invalid symbol. Please enter the symbol using all uppercase letters.")
		}

		var side string
		for {
			side = strings.ToUpper(prompt(in, "Enter side (BUY or SELL): "))
			if side == "BUY" || side == "SELL" {
				break
			}
			fmt.Println("Invalid side. Please enter 'BUY' or 'SELL'.")
		}

		quantity := int64(100)
		if q := prompt(in, "Enter quantity [default=100]: "); q != "" {
			parsed, err := strconv.ParseInt(q, 10, 64)
			if err != nil {
				fmt.Println("Invalid quantity, using default of 100.")
			} else {
				quantity = parsed
			}
		}

		var price float64
		for {
			parsed, err := strconv.ParseFloat(prompt(in, "Enter price: "), 64)
			if err == nil {
				price = parsed
				break
			}
			fmt.Println("Invalid price. Please enter a numeric value.")
		}

		msg := mq.OrderMessage{
			Username: username,
			Symbol:   symbol,
			Side:     side,
			Price:    price,
			Quantity: quantity,
		}

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := producer.Send(ctx, msg)
		cancel()
		if err != nil {
			fmt.Println("Failed to send order:", err)
		} else {
			fmt.Printf("\n[x] Order sent: %s %s %d @ %.2f (%s)\n",
				msg.Side, msg.Symbol, msg.Quantity, msg.Price, msg.Username)
		}

		if again := prompt(in, "\nSend another order? (y/n): "); !strings.HasPrefix(strings.ToLower(again), "y") {
			break
		}
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}

func isUpperSymbol(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
