package extract

import (
	"bytes"
	"fmt"
	"text/template"
)

// querySystemMsg primes the model for strict JSON output.
const querySystemMsg = "You are a helpful assistant that extracts car information " +
	"from user queries and returns structured JSON data. Always return valid JSON only."

// queryTmpl is the query extraction prompt template.
const queryTmpl = `Extract car information from the following user query and return ONLY a JSON object with the following structure:
{
  "make": "car make (e.g., Toyota, Honda, BMW)",
  "model": "car model (e.g., Camry, Accord, X5)",
  "year": "year if mentioned (e.g., 2020, 2023)",
  "type": "vehicle type if mentioned (e.g., sedan, SUV, truck, EV)",
  "price": "price range if mentioned (e.g., under 25000, 20000-30000)",
  "features": ["any specific features mentioned"]
}

User query: "{{.Query}}"

Return ONLY the JSON object, no additional text or explanation.`

var queryPrompt = template.Must(template.New("query").Parse(queryTmpl))

// RenderQueryPrompt renders the extraction prompt for a user query.
func RenderQueryPrompt(query string) (string, error) {
	var buf bytes.Buffer
	if err := queryPrompt.Execute(&buf, struct{ Query string }{Query: query}); err != nil {
		return "", fmt.Errorf("executing query template: %w", err)
	}
	return buf.String(), nil
}
