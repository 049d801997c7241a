package rules

import (
	"gopkg.in/yaml.v3"

	"github.com/complykit/complykit/internal/schema"
)

// Recommendation texts shared between rules so that related answer
// values surface the same guidance exactly once in a result.
const (
	recClinicalValidation = "Ensure clinical validation of medical AI systems"
	recMedicalDevice      = "Implement medical device regulation compliance"
	recADMInformation     = "Provide clear information about automated decision making"
	recRightToExplanation = "Implement right-to-explanation mechanisms"
	recBiometricNecessity = "Assess legal necessity and proportionality of biometric identification"
	recBiometricSafeguard = "Implement additional safeguards for biometric data"
	recEmotionLegalBasis  = "Review legal bases for emotion recognition"
	recEmotionAlternative = "Consider less invasive alternatives to emotion recognition"
	recConformity         = "Implement conformity assessment procedures"
	recRiskManagement     = "Establish a risk management system"
	recGDPR               = "Ensure GDPR compliance for personal data processing"
	recDataMinimisation   = "Implement data minimisation principles"
	recTransparency       = "Improve transparency by informing users about AI use"
	recCommunication      = "Develop clear communication policies about AI systems"
	recOversight          = "Establish continuous or periodic human oversight"
	recOversightTraining  = "Train staff for effective oversight of AI systems"
)

// euAIAct is the built-in EU AI Act self-assessment pack: eight
// mandatory questions with additive rule weights. Lowest-risk options
// contribute nothing; the highest-risk path saturates the score clamp.
func euAIAct() *Pack {
	p := &Pack{
		Name: "eu-ai-act",
		Questions: []schema.Question{
			{
				ID:     "medical_diagnosis",
				Prompt: "Does your AI system perform or support medical diagnosis?",
				Options: []schema.Option{
					{Value: "yes", Label: "Yes, it produces diagnoses autonomously"},
					{Value: "support", Label: "It supports clinicians who make the diagnosis"},
					{Value: "other", Label: "No medical diagnostic role"},
				},
			},
			{
				ID:     "automated_decision_making",
				Prompt: "Does the system make decisions about individuals without human involvement?",
				Options: []schema.Option{
					{Value: "yes", Label: "Yes, decisions are fully automated"},
					{Value: "partial", Label: "Partially, a human reviews some decisions"},
					{Value: "no", Label: "No, humans make all final decisions"},
				},
			},
			{
				ID:     "biometric_identification",
				Prompt: "Does the system identify people using biometric data?",
				Options: []schema.Option{
					{Value: "realtime", Label: "Yes, in real time"},
					{Value: "post", Label: "Yes, after the fact (post-remote)"},
					{Value: "no", Label: "No biometric identification"},
				},
			},
			{
				ID:     "emotion_recognition",
				Prompt: "Does the system infer emotions or mental states?",
				Options: []schema.Option{
					{Value: "yes", Label: "Yes"},
					{Value: "no", Label: "No"},
				},
			},
			{
				ID:     "critical_infrastructure",
				Prompt: "Is the system used to operate or protect critical infrastructure?",
				Options: []schema.Option{
					{Value: "yes", Label: "Yes"},
					{Value: "no", Label: "No"},
				},
			},
			{
				ID:     "data_processing",
				Prompt: "What categories of personal data does the system process?",
				Options: []schema.Option{
					{Value: "sensitive", Label: "Special-category (health, biometric, etc.)"},
					{Value: "personal", Label: "Ordinary personal data"},
					{Value: "anonymized", Label: "Anonymised or aggregated data only"},
					{Value: "none", Label: "No personal data"},
				},
			},
			{
				ID:     "transparency",
				Prompt: "How transparent are you with users about AI involvement?",
				Options: []schema.Option{
					{Value: "full", Label: "Fully disclosed, with documentation"},
					{Value: "partial", Label: "Disclosed in some contexts"},
					{Value: "minimal", Label: "Mentioned only in fine print"},
					{Value: "none", Label: "Not disclosed"},
				},
			},
			{
				ID:     "human_oversight",
				Prompt: "What level of human oversight does the system operate under?",
				Options: []schema.Option{
					{Value: "continuous", Label: "Continuous supervision"},
					{Value: "periodic", Label: "Periodic review"},
					{Value: "exception", Label: "Only when something goes wrong"},
					{Value: "none", Label: "No human oversight"},
				},
			},
		},
		Rules: []schema.RiskRule{
			{QuestionID: "medical_diagnosis", Value: "yes", ScoreDelta: 3.0, Recommendation: recClinicalValidation},
			{QuestionID: "medical_diagnosis", Value: "yes", ScoreDelta: 0, Recommendation: recMedicalDevice},
			{QuestionID: "medical_diagnosis", Value: "support", ScoreDelta: 1.5, Recommendation: recClinicalValidation},

			{QuestionID: "automated_decision_making", Value: "yes", ScoreDelta: 2.0, Recommendation: recADMInformation},
			{QuestionID: "automated_decision_making", Value: "yes", ScoreDelta: 0, Recommendation: recRightToExplanation},
			{QuestionID: "automated_decision_making", Value: "partial", ScoreDelta: 1.0, Recommendation: recADMInformation},

			{QuestionID: "biometric_identification", Value: "realtime", ScoreDelta: 3.0, Recommendation: recBiometricNecessity},
			{QuestionID: "biometric_identification", Value: "realtime", ScoreDelta: 0, Recommendation: recBiometricSafeguard},
			{QuestionID: "biometric_identification", Value: "post", ScoreDelta: 1.5, Recommendation: recBiometricSafeguard},

			{QuestionID: "emotion_recognition", Value: "yes", ScoreDelta: 2.0, Recommendation: recEmotionLegalBasis},
			{QuestionID: "emotion_recognition", Value: "yes", ScoreDelta: 0, Recommendation: recEmotionAlternative},

			{QuestionID: "critical_infrastructure", Value: "yes", ScoreDelta: 2.5, Recommendation: recConformity},
			{QuestionID: "critical_infrastructure", Value: "yes", ScoreDelta: 0, Recommendation: recRiskManagement},

			{QuestionID: "data_processing", Value: "sensitive", ScoreDelta: 2.0, Recommendation: recGDPR},
			{QuestionID: "data_processing", Value: "sensitive", ScoreDelta: 0, Recommendation: recDataMinimisation},
			{QuestionID: "data_processing", Value: "personal", ScoreDelta: 1.0, Recommendation: recGDPR},
			{QuestionID: "data_processing", Value: "anonymized", ScoreDelta: 0.5},

			{QuestionID: "transparency", Value: "none", ScoreDelta: 1.5, Recommendation: recTransparency},
			{QuestionID: "transparency", Value: "none", ScoreDelta: 0, Recommendation: recCommunication},
			{QuestionID: "transparency", Value: "minimal", ScoreDelta: 1.0, Recommendation: recTransparency},
			{QuestionID: "transparency", Value: "partial", ScoreDelta: 0.5},

			{QuestionID: "human_oversight", Value: "none", ScoreDelta: 2.0, Recommendation: recOversight},
			{QuestionID: "human_oversight", Value: "none", ScoreDelta: 0, Recommendation: recOversightTraining},
			{QuestionID: "human_oversight", Value: "exception", ScoreDelta: 1.0, Recommendation: recOversight},
			{QuestionID: "human_oversight", Value: "periodic", ScoreDelta: 0.5},
		},
	}

	// Built-in packs hash their canonical YAML rendering so the report
	// provenance field works the same for built-in and file packs.
	src, err := yaml.Marshal(p)
	if err != nil {
		panic("rules: marshaling built-in pack: " + err.Error())
	}
	p.source = src
	return p
}
