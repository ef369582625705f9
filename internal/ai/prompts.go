package ai

import _ "embed"

//go:embed prompts/validation.txt
var validationPrompt string

//go:embed prompts/script.txt
var scriptPrompt string
