package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// doerFunc adapts a function to the Doer interface.
type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newClient(doer Doer) *Client {
	return &Client{
		BaseURL: "https://api.example.com/v1",
		APIKey:  "test-key",
		Model:   "test-model",
		Effort:  "low",
		Limit:   5,
		HTTP:    doer,
	}
}

// respond builds a 200 reply whose single message output carries the given text.
func respond(text string) *http.Response {
	envelope := map[string]any{
		"output": []map[string]any{
			{
				"type": "message",
				"content": []map[string]any{
					{"type": "output_text", "text": text},
				},
			},
		},
	}
	body, _ := json.Marshal(envelope)
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

func TestSearchVideos(t *testing.T) {
	Convey("SearchVideos", t, func() {
		Convey("Should send a schema-constrained request with credentials", func() {
			var captured *http.Request
			var sent request
			client := newClient(doerFunc(func(req *http.Request) (*http.Response, error) {
				captured = req
				So(json.NewDecoder(req.Body).Decode(&sent), ShouldBeNil)
				return respond("[]"), nil
			}))

			_, err := client.SearchVideos(context.Background(), "cats")
			So(err, ShouldBeNil)

			So(captured.Method, ShouldEqual, http.MethodPost)
			So(captured.URL.String(), ShouldEqual, "https://api.example.com/v1/responses")
			So(captured.Header.Get("Authorization"), ShouldEqual, "Bearer test-key")
			So(captured.Header.Get("Content-Type"), ShouldEqual, "application/json")

			So(sent.Model, ShouldEqual, "test-model")
			So(sent.Input, ShouldContainSubstring, `"cats"`)
			So(sent.Tools, ShouldResemble, []tool{{Type: "web_search"}})
			So(sent.Reasoning.Effort, ShouldEqual, "low")
			So(sent.Text.Format.Type, ShouldEqual, "json_schema")
			So(sent.Text.Format.Strict, ShouldBeTrue)
			So(sent.Text.Format.Schema, ShouldNotBeNil)
		})

		Convey("Should map candidates to videos in order with derived thumbnails", func() {
			client := newClient(doerFunc(func(*http.Request) (*http.Response, error) {
				return respond(`[
					{"title": "Funny Cats", "url": "https://www.youtube.com/watch?v=AAAAAAAAAAA"},
					{"title": "Cats 2", "url": "https://youtu.be/BBBBBBBBBBB"}
				]`), nil
			}))

			videos, err := client.SearchVideos(context.Background(), "cats")
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 2)
			So(videos[0].ID, ShouldEqual, "AAAAAAAAAAA")
			So(videos[0].Title, ShouldEqual, "Funny Cats")
			So(videos[0].Thumbnail, ShouldEqual, "https://img.youtube.com/vi/AAAAAAAAAAA/mqdefault.jpg")
			So(videos[1].ID, ShouldEqual, "BBBBBBBBBBB")
		})

		Convey("Should drop candidates without a valid identifier, preserving order", func() {
			client := newClient(doerFunc(func(*http.Request) (*http.Response, error) {
				return respond(`[
					{"title": "Good", "url": "https://www.youtube.com/watch?v=AAAAAAAAAAA"},
					{"title": "Bad", "url": "https://example.com/not-a-video"},
					{"title": "Also good", "url": "https://www.youtube.com/watch?v=CCCCCCCCCCC"}
				]`), nil
			}))

			videos, err := client.SearchVideos(context.Background(), "cats")
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 2)
			So(videos[0].Title, ShouldEqual, "Good")
			So(videos[1].Title, ShouldEqual, "Also good")
		})

		Convey("Should return an error on transport failure", func() {
			client := newClient(doerFunc(func(*http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			}))

			videos, err := client.SearchVideos(context.Background(), "cats")
			So(err, ShouldNotBeNil)
			So(videos, ShouldBeNil)
		})

		Convey("Should return an error on an unexpected status code", func() {
			client := newClient(doerFunc(func(*http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusTooManyRequests,
					Body:       io.NopCloser(bytes.NewReader(nil)),
				}, nil
			}))

			_, err := client.SearchVideos(context.Background(), "cats")
			So(err, ShouldNotBeNil)
		})

		Convey("Should treat an empty body as empty results, not a failure", func() {
			client := newClient(doerFunc(func(*http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewReader(nil)),
				}, nil
			}))

			videos, err := client.SearchVideos(context.Background(), "cats")
			So(err, ShouldBeNil)
			So(videos, ShouldBeEmpty)
		})

		Convey("Should treat missing output text as empty results", func() {
			client := newClient(doerFunc(func(*http.Request) (*http.Response, error) {
				return respond(""), nil
			}))

			videos, err := client.SearchVideos(context.Background(), "cats")
			So(err, ShouldBeNil)
			So(videos, ShouldBeEmpty)
		})

		Convey("Should treat schema-violating output text as empty results", func() {
			client := newClient(doerFunc(func(*http.Request) (*http.Response, error) {
				return respond(`{"oops": "not an array"}`), nil
			}))

			videos, err := client.SearchVideos(context.Background(), "cats")
			So(err, ShouldBeNil)
			So(videos, ShouldBeEmpty)
		})
	})
}
