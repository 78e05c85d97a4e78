package snapshotio

// documentSchema validates an exported journal document before any of it is
// trusted. The shape mirrors the engine state plus the schemaVersion the
// importer gates on.
var documentSchema = map[string]any{
	"type":     "object",
	"required": []any{"schemaVersion", "state"},
	"properties": map[string]any{
		"schemaVersion": map[string]any{
			"type":    "string",
			"pattern": `^v\d+\.\d+\.\d+$`,
		},
		"exportedAt": map[string]any{
			"type": "string",
		},
		"state": map[string]any{
			"type":     "object",
			"required": []any{"xp", "days", "consecutiveFailures", "severity", "defaultView"},
			"properties": map[string]any{
				"xp": map[string]any{
					"type":    "integer",
					"minimum": 0,
				},
				"consecutiveFailures": map[string]any{
					"type":    "integer",
					"minimum": 0,
				},
				"severity": map[string]any{
					"type": "string",
					"enum": []any{"tolerant", "normal", "punitive"},
				},
				"defaultView": map[string]any{
					"type": "string",
					"enum": []any{"year", "day"},
				},
				"days": map[string]any{
					"type": "object",
					"patternProperties": map[string]any{
						`^\d{4}-\d{2}-\d{2}$`: map[string]any{
							"type":     "object",
							"required": []any{"date"},
							"properties": map[string]any{
								"date":     map[string]any{"type": "string"},
								"xpEarned": map[string]any{"type": "integer"},
								"blocked":  map[string]any{"type": "boolean"},
								"missions": map[string]any{
									// A day created only by the blocking
									// cascade serializes a null mission list.
									"type": []any{"array", "null"},
									"items": map[string]any{
										"type":     "object",
										"required": []any{"id", "title", "tier", "date", "status"},
										"properties": map[string]any{
											"id":    map[string]any{"type": "string", "minLength": 1},
											"title": map[string]any{"type": "string", "minLength": 1},
											"tier": map[string]any{
												"type": "string",
												"enum": []any{"winchester", "salvatores", "waynes", "suits"},
											},
											"status": map[string]any{
												"type": "string",
												"enum": []any{"pending", "completed", "failed"},
											},
											"date": map[string]any{"type": "string"},
										},
									},
								},
							},
						},
					},
					"additionalProperties": false,
				},
			},
		},
	},
}
