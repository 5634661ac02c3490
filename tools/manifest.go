package tools

import (
	"context"

	llmagent "github.com/dhk1349/llm-agent"
)

type averageArgs struct {
	Numbers []float64 `json:"numbers" jsonschema:"description=Numbers to average"`
}

type sineWaveArgs struct {
	Amplitude float64 `json:"amplitude,omitempty" jsonschema:"description=Amplitude of the sine wave,default=1"`
	Frequency float64 `json:"frequency,omitempty" jsonschema:"description=Frequency of the sine wave,default=1"`
}

type gradientArgs struct {
	StartColor RGB `json:"start_color" jsonschema:"description=RGB values (0-255) of the start colour"`
	EndColor   RGB `json:"end_color" jsonschema:"description=RGB values (0-255) of the end colour"`
	Width      int `json:"width,omitempty" jsonschema:"description=Width of the image in pixels,default=300"`
	Height     int `json:"height,omitempty" jsonschema:"description=Height of the image in pixels,default=100"`
}

type fibonacciArgs struct {
	N int `json:"n" jsonschema:"description=Number of Fibonacci numbers to generate"`
}

type textArgs struct {
	Text string `json:"text" jsonschema:"description=Input text"`
}

type noArgs struct{}

// Manifest declares every tool the agent exposes. Images are written to store.
func Manifest(store *ImageStore) []llmagent.Tool {
	return []llmagent.Tool{
		llmagent.NewTool("calculate_average",
			"Calculate the average of given numbers.",
			averageArgs{},
			func(_ context.Context, args averageArgs) (any, error) {
				return CalculateAverage(args.Numbers...)
			}),
		llmagent.NewTool("draw_sine_wave",
			"Draw a sine wave with the given amplitude and frequency. Returns the base64 encoded PNG and the path it was saved to.",
			sineWaveArgs{Amplitude: 1, Frequency: 1},
			func(_ context.Context, args sineWaveArgs) (any, error) {
				png, err := DrawSineWave(args.Amplitude, args.Frequency)
				if err != nil {
					return nil, err
				}
				return store.SaveResult("sine_wave", png)
			}),
		llmagent.NewTool("generate_color_gradient",
			"Generate an image with a horizontal colour gradient between two RGB colours. Returns the base64 encoded PNG and the path it was saved to.",
			gradientArgs{Width: 300, Height: 100},
			func(_ context.Context, args gradientArgs) (any, error) {
				png, err := GenerateColorGradient(args.StartColor, args.EndColor, args.Width, args.Height)
				if err != nil {
					return nil, err
				}
				return store.SaveResult("gradient", png)
			}),
		llmagent.NewTool("list_generated_images",
			"List all generated images in the images directory.",
			noArgs{},
			func(_ context.Context, _ noArgs) (any, error) {
				return store.List()
			}),
		llmagent.NewTool("clear_generated_images",
			"Delete all generated images. Returns the number of files deleted.",
			noArgs{},
			func(_ context.Context, _ noArgs) (any, error) {
				return store.Clear()
			}),
		llmagent.NewTool("fibonacci",
			"Generate the Fibonacci sequence up to n numbers.",
			fibonacciArgs{},
			func(_ context.Context, args fibonacciArgs) (any, error) {
				return Fibonacci(args.N)
			}),
		llmagent.NewTool("text_statistics",
			"Analyze text and return word count, character count, average word length and sentence count.",
			textArgs{},
			func(_ context.Context, args textArgs) (any, error) {
				return TextStatistics(args.Text), nil
			}),
	}
}
