package llm

import "fmt"

// systemInstruction is kept short so small context windows stay free for data.
const systemInstruction = "Senior Analyst. Provide concise analysis using data provided."

const promptFrame = `Below is an instruction that describes a task, paired with an input that provides further context. Write a response that appropriately completes the request.

### Instruction:
%s

### Input:
%s

### Response:
`

// BuildPrompt wraps user input in the instruction frame the model was tuned on.
func BuildPrompt(userInput string) string {
	return fmt.Sprintf(promptFrame, systemInstruction, userInput)
}

// GenerationParams control sampling for a single completion request.
type GenerationParams struct {
	MaxTokens     int      `json:"n_predict"`
	Temperature   float64  `json:"temperature"`
	TopP          float64  `json:"top_p"`
	TopK          int      `json:"top_k"`
	RepeatPenalty float64  `json:"repeat_penalty"`
	Stop          []string `json:"stop"`
}

// DefaultGenerationParams returns the sampling settings tuned for analysis
// answers. Stop sequences prevent the model from continuing the template.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		MaxTokens:     500,
		Temperature:   0.7,
		TopP:          0.9,
		TopK:          40,
		RepeatPenalty: 1.1,
		Stop:          []string{"### Instruction:", "### Input:", "</s>", "[/INST]"},
	}
}
