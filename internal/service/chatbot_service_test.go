package service

import (
	"math/rand"
	"strings"
	"testing"
)

func newTestChatbot() *ChatbotService {
	return NewChatbotService(rand.New(rand.NewSource(1)))
}

func TestChatbotKeywordMatch(t *testing.T) {
	bot := newTestChatbot()

	tests := []struct {
		message string
		want    string
	}{
		{"Can I schedule an appointment?", "schedule an appointment"},
		{"Where are my test results?", "test results"},
		{"I have chest pain", "consult with your doctor"},
		{"Tell me about liver screening", "AFP blood tests"},
		{"lung cancer risks?", "CEA blood tests"},
		{"when should I get a mammogram", "CA 15-3"},
	}

	for _, tc := range tests {
		reply := bot.Respond(tc.message)
		if !strings.Contains(reply, tc.want) {
			t.Errorf("message %q: expected reply containing %q, got %q", tc.message, tc.want, reply)
		}
	}
}

func TestChatbotMatchIsCaseInsensitive(t *testing.T) {
	bot := newTestChatbot()

	if bot.Respond("APPOINTMENT") != bot.Respond("appointment") {
		t.Error("keyword matching should ignore case")
	}
}

func TestChatbotFirstRuleWins(t *testing.T) {
	bot := newTestChatbot()

	// "appointment" appears before "test" in the rule list.
	reply := bot.Respond("appointment for a blood test")
	if !strings.Contains(reply, "schedule an appointment") {
		t.Errorf("expected the appointment rule to win, got %q", reply)
	}
}

func TestChatbotFallback(t *testing.T) {
	bot := newTestChatbot()

	reply := bot.Respond("hello there")
	found := false
	for _, fb := range chatbotFallbacks {
		if reply == fb {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected one of the fallback replies, got %q", reply)
	}
}
