package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vidsan-cli/vidsan/log"
	"github.com/vidsan-cli/vidsan/video"
	"github.com/invopop/jsonschema"
)

// request is the completion service request payload.
type request struct {
	Model     string     `json:"model"`
	Input     string     `json:"input"`
	Tools     []tool     `json:"tools"`
	Reasoning *reasoning `json:"reasoning,omitempty"`
	Text      textSpec   `json:"text"`
}

type tool struct {
	Type string `json:"type"`
}

type reasoning struct {
	Effort string `json:"effort"`
}

type textSpec struct {
	Format format `json:"format"`
}

type format struct {
	Type   string             `json:"type"`
	Name   string             `json:"name"`
	Strict bool               `json:"strict"`
	Schema *jsonschema.Schema `json:"schema"`
}

// response covers the subset of the service reply the pipeline needs.
type response struct {
	Output []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

// outputText returns the first text block of the first message output.
func (r *response) outputText() string {
	for _, out := range r.Output {
		if out.Type != "message" {
			continue
		}
		for _, content := range out.Content {
			if content.Type == "output_text" {
				return content.Text
			}
		}
	}
	return ""
}

// SearchVideos asks the completion service for the top videos matching the query.
//
// A transport failure or an unexpected status code is the only error the caller
// sees. An empty or malformed reply body is logged and yields an empty result
// list. Elements whose URL carries no valid identifier are dropped silently,
// order preserved. No retries, no caching, no deduplication.
func (c *Client) SearchVideos(ctx context.Context, query string) ([]*video.Video, error) {
	limit := c.Limit
	if limit <= 0 {
		limit = 5
	}

	// Prepare the request body for the completion service.
	log.Infof("Searching videos for query %q", query)
	body := request{
		Model: c.Model,
		Input: fmt.Sprintf(
			"Search the web for YouTube videos matching the query %q. "+
				"Respond with a JSON array of the top %d videos, "+
				"each an object with the video title and its YouTube URL.",
			query, limit,
		),
		Tools: []tool{{Type: "web_search"}},
		Text: textSpec{
			Format: format{
				Type:   "json_schema",
				Name:   "video_results",
				Strict: true,
				Schema: resultSchema,
			},
		},
	}
	if c.Effort != "" {
		body.Reasoning = &reasoning{Effort: c.Effort}
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	// Dispatch the request to the completion service.
	log.Info("Sending request to the completion service")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/responses", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error(err)
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("Completion service returned status code " + strconv.Itoa(resp.StatusCode))
		return nil, fmt.Errorf("invalid response code %d", resp.StatusCode)
	}

	// Decode the service envelope. A body the envelope cannot be read from
	// is treated as an empty result, not a failure.
	var envelope response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		log.Errorf("undecodable response body: %v", err)
		return nil, nil
	}

	text := envelope.outputText()
	if text == "" {
		log.Warn("Completion service returned no output text")
		return nil, nil
	}

	var candidates []candidate
	if err := json.Unmarshal([]byte(text), &candidates); err != nil {
		log.Errorf("output text violates the result schema: %v", err)
		return nil, nil
	}

	// Normalize candidates into videos, dropping those without a usable identifier.
	videos := make([]*video.Video, 0, len(candidates))
	for _, cand := range candidates {
		v, ok := video.New(cand.Title, cand.URL)
		if !ok {
			log.Warnf("dropping result with no video identifier: %q", cand.URL)
			continue
		}
		videos = append(videos, v)
	}

	log.Infof("Got response from the completion service, found %d videos", len(videos))
	return videos, nil
}
