// Package prompt builds the instruction prompts sent to the model. Every
// function here is a pure function of its input; no I/O, no state.
package prompt

import "strings"

// Refusal is the exact line the model is instructed to return for requests
// that cannot be mapped to gcloud commands.
const Refusal = "Request cannot be fulfilled."

const commandTemplate = `You are InfraGPT, a specialized assistant that helps users convert their natural language requests into
appropriate Google Cloud (gcloud) CLI commands.

INSTRUCTIONS:
1. Analyze the user's input to understand the intended cloud operation.
2. If the request is valid and related to Google Cloud operations, respond with ONLY the appropriate gcloud command(s).
3. If the operation requires multiple commands, separate them with a newline.
4. Include parameter placeholders in square brackets like [PROJECT_ID], [TOPIC_NAME], [SUBSCRIPTION_NAME], etc.
5. Do not include any explanations, markdown formatting, or additional text in your response.

Examples:
- Request: "Create a new VM instance called test-instance with 2 CPUs in us-central1-a"
  Response: gcloud compute instances create test-instance --machine-type=e2-medium --zone=us-central1-a

- Request: "Give viewer permissions to user@example.com for a pubsub topic"
  Response: gcloud pubsub topics add-iam-policy-binding [TOPIC_NAME] --member=user:user@example.com --role=roles/pubsub.viewer

- Request: "Create a VM instance and attach a new disk to it"
  Response: gcloud compute instances create [INSTANCE_NAME] --zone=[ZONE] --machine-type=e2-medium
gcloud compute disks create [DISK_NAME] --size=200GB --zone=[ZONE]
gcloud compute instances attach-disk [INSTANCE_NAME] --disk=[DISK_NAME] --zone=[ZONE]

- Request: "What's the weather like today?"
  Response: ` + Refusal + `

User request: `

const parameterTemplate = `You are InfraGPT Parameter Helper, a specialized assistant that helps users understand Google Cloud CLI command parameters.

TASK:
Analyze the Google Cloud CLI command below and provide information about each parameter that needs to be filled in.
For each parameter in square brackets like [PARAMETER_NAME], provide:
1. A brief description of what this parameter is
2. Examples of valid values
3. Any constraints or requirements

Format your response as JSON with the parameter name as key, like this:
` + "```json" + `
{
  "PARAMETER_NAME": {
    "description": "Brief description of the parameter",
    "examples": ["example1", "example2"],
    "required": true,
    "default": "default value if any, otherwise null"
  }
}
` + "```" + `

Command: `

// ForCommand wraps a natural language request with the gcloud instruction
// template.
func ForCommand(request string) string {
	return commandTemplate + request + "\n\nYour gcloud command(s):"
}

// ForParameters wraps a generated command with the parameter-description
// instructions.
func ForParameters(command string) string {
	return parameterTemplate + command + "\n\nParameter JSON:"
}

// SplitCommands splits a model response into individual commands. A refusal
// passes through untouched as a single element so callers can detect it.
func SplitCommands(response string) []string {
	if strings.Contains(response, Refusal) {
		return []string{Refusal}
	}

	var commands []string
	for _, line := range strings.Split(response, "\n") {
		if cmd := strings.TrimSpace(line); cmd != "" {
			commands = append(commands, cmd)
		}
	}
	return commands
}
