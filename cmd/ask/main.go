package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

type chatReply struct {
	Reply string `json:"reply"`
}

func ask(client *http.Client, baseURL, userID, question string) (int, string, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/chat?question="+url.QueryEscape(question), nil)
	if err != nil {
		return 0, "", err
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", err
	}

	var out chatReply
	if err := json.Unmarshal(body, &out); err != nil {
		return resp.StatusCode, string(body), nil
	}
	return resp.StatusCode, out.Reply, nil
}

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "chat server base URL")
	userID := flag.String("user", "", "value sent as X-User-ID")
	flag.Parse()

	client := &http.Client{Timeout: 3 * time.Minute}

	color.Cyan("Medicine chatbot. Type a question, \"reset history\" to start over, or an empty line to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		color.Yellow("\n> ")
		if !scanner.Scan() {
			return
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			return
		}

		start := time.Now()
		status, reply, err := ask(client, *baseURL, *userID, question)
		if err != nil {
			color.Red("Request failed: %v", err)
			continue
		}

		switch {
		case status >= 500:
			color.Red("[%d] %s", status, reply)
		case status >= 400:
			color.Magenta("[%d] %s", status, reply)
		default:
			color.Green("[%d] (%s)", status, time.Since(start).Round(time.Millisecond))
			fmt.Println(reply)
		}
	}
}
