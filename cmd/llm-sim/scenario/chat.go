package scenario

// ChatScenario returns a plain chat-completion flow: moderation check, one
// model call, response post-processing.
func ChatScenario() *Scenario {
	return &Scenario{
		Name:        "chat",
		Description: "Chat completion with moderation and post-processing",
		RootSpan: SpanTemplate{
			Name:     "HandleChatMessage",
			Kind:     "CHAIN",
			Duration: Duration(1_200_000_000), // 1.2s
			Attributes: map[string]string{
				"input.value": "What is the return policy for opened items?",
			},
			Children: []SpanTemplate{
				{
					Name:     "ModerateInput",
					Kind:     "CHAIN",
					Duration: Duration(80_000_000), // 80ms
					Attributes: map[string]string{
						"moderation.flagged": "false",
					},
				},
				{
					Name:        "ChatCompletion",
					Kind:        "LLM",
					Duration:    Duration(950_000_000), // 950ms
					ErrorRate:   0.02,
					ErrorStatus: "model request timed out",
					Attributes: map[string]string{
						"llm.model_name":             "gpt-4o-mini",
						"llm.token_count.prompt":     "412",
						"llm.token_count.completion": "96",
						"llm.invocation_parameters":  `{"temperature":0.2}`,
					},
				},
				{
					Name:     "FormatResponse",
					Kind:     "CHAIN",
					Duration: Duration(20_000_000), // 20ms
				},
			},
		},
	}
}
