package scenario

// AgentScenario returns an agent loop: the model plans, invokes two tools,
// then produces a final answer.
func AgentScenario() *Scenario {
	return &Scenario{
		Name:        "agent",
		Description: "Agent reasoning loop with tool calls",
		RootSpan: SpanTemplate{
			Name:     "RunAgent",
			Kind:     "AGENT",
			Duration: Duration(3_400_000_000), // 3.4s
			Attributes: map[string]string{
				"input.value": "Book the cheapest flight to Berlin next Friday",
			},
			Children: []SpanTemplate{
				{
					Name:     "Plan",
					Kind:     "LLM",
					Duration: Duration(800_000_000), // 800ms
					Attributes: map[string]string{
						"llm.model_name": "gpt-4o",
					},
				},
				{
					Name:        "SearchFlights",
					Kind:        "TOOL",
					Duration:    Duration(1_100_000_000), // 1.1s
					ErrorRate:   0.05,
					ErrorStatus: "flight search API returned 503",
					Attributes: map[string]string{
						"tool.name": "search_flights",
					},
				},
				{
					Name:     "GetPriceDetails",
					Kind:     "TOOL",
					Duration: Duration(500_000_000), // 500ms
					Attributes: map[string]string{
						"tool.name": "get_price_details",
					},
				},
				{
					Name:     "FinalAnswer",
					Kind:     "LLM",
					Duration: Duration(900_000_000), // 900ms
					Attributes: map[string]string{
						"llm.model_name":             "gpt-4o",
						"llm.token_count.completion": "142",
					},
				},
			},
		},
	}
}
