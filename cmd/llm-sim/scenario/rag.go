package scenario

// RAGScenario returns a retrieval-augmented generation flow: embed the query,
// retrieve documents, rerank, then synthesize an answer.
func RAGScenario() *Scenario {
	return &Scenario{
		Name:        "rag",
		Description: "Retrieval-augmented generation over a vector store",
		RootSpan: SpanTemplate{
			Name:     "AnswerQuestion",
			Kind:     "CHAIN",
			Duration: Duration(2_100_000_000), // 2.1s
			Attributes: map[string]string{
				"input.value": "How do I rotate the signing keys?",
			},
			Children: []SpanTemplate{
				{
					Name:     "EmbedQuery",
					Kind:     "EMBEDDING",
					Duration: Duration(120_000_000), // 120ms
					Attributes: map[string]string{
						"embedding.model_name": "text-embedding-3-small",
					},
				},
				{
					Name:        "RetrieveDocuments",
					Kind:        "RETRIEVER",
					Duration:    Duration(180_000_000), // 180ms
					ErrorRate:   0.01,
					ErrorStatus: "vector store unavailable",
					Attributes: map[string]string{
						"retrieval.documents.count": "8",
					},
				},
				{
					Name:     "RerankDocuments",
					Kind:     "RETRIEVER",
					Duration: Duration(90_000_000), // 90ms
					Attributes: map[string]string{
						"reranker.top_k": "3",
					},
				},
				{
					Name:     "SynthesizeAnswer",
					Kind:     "LLM",
					Duration: Duration(1_600_000_000), // 1.6s
					Attributes: map[string]string{
						"llm.model_name":             "gpt-4o",
						"llm.token_count.prompt":     "2210",
						"llm.token_count.completion": "184",
					},
				},
			},
		},
	}
}
