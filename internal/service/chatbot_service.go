package service

import (
	"math/rand"
	"strings"
)

// chatbotRule maps message keywords to a canned reply. Rules are checked
// in order; the first match wins.
type chatbotRule struct {
	keywords []string
	reply    string
}

var chatbotRules = []chatbotRule{
	{
		keywords: []string{"appointment", "schedule"},
		reply:    "I can help you schedule an appointment. Please contact our reception at +92 300 1234567 or use the appointment booking feature in your dashboard.",
	},
	{
		keywords: []string{"test", "result"},
		reply:    "Your test results are available in your dashboard. For detailed interpretation, please consult with your doctor during your next appointment.",
	},
	{
		keywords: []string{"symptom", "pain"},
		reply:    "If you're experiencing symptoms, it's important to consult with your doctor. For urgent concerns, please contact emergency services or visit the nearest hospital.",
	},
	{
		keywords: []string{"liver", "hepat"},
		reply:    "For liver cancer, screening typically involves AFP blood tests and imaging studies like CT scans or MRIs. Regular monitoring is important if you have risk factors like hepatitis or cirrhosis.",
	},
	{
		keywords: []string{"lung", "respiratory"},
		reply:    "Lung cancer screening may include CEA blood tests, chest X-rays, and CT scans. If you have a history of smoking, regular screenings are especially important.",
	},
	{
		keywords: []string{"breast", "mammogram"},
		reply:    "Breast cancer screening includes mammograms, CA 15-3 blood tests, and HER2 status testing. Regular self-examinations and annual screenings are recommended for early detection.",
	},
}

var chatbotFallbacks = []string{
	"I understand you're concerned about your health. Can you tell me more about your symptoms?",
	"Based on your description, I recommend consulting with your doctor. Would you like to schedule an appointment?",
	"Cancer screening typically involves blood tests and imaging studies. Have you had these tests done?",
	"It's important to maintain regular follow-ups with your healthcare provider. How can I help you today?",
	"I can help you understand your test results or answer questions about cancer screening and treatment. What would you like to know?",
	"Early detection is crucial for successful cancer treatment. If you have concerns, please don't hesitate to contact your doctor.",
	"Regular screenings and monitoring are important for cancer prevention and early detection. Have you discussed screening options with your doctor?",
	"I'm here to help answer your questions about cancer diagnosis, treatment, and management. What specific information are you looking for?",
}

// ChatbotService answers free-text questions with keyword-matched canned
// responses, falling back to a random generic reply.
type ChatbotService struct {
	rng *rand.Rand
}

func NewChatbotService(rng *rand.Rand) *ChatbotService {
	return &ChatbotService{rng: rng}
}

func (s *ChatbotService) Respond(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range chatbotRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return chatbotFallbacks[s.rng.Intn(len(chatbotFallbacks))]
}
