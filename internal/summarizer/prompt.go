package summarizer

import "fmt"

const summaryPrompt = `You are summarizing a YouTube video.

Video title: "%s"

Below are the video's subtitles/transcript. Based on these subtitles:

1. First, write a short paragraph that directly answers or addresses the video's title. Many YouTube titles are clickbait — cut through it and give the real answer upfront.

2. Then, list the key points and takeaways from the video as bullet points.

Be concise and factual. Only include information actually present in the subtitles.

--- SUBTITLES ---
%s
--- END SUBTITLES ---`

// Prompt builds the fixed-shape summarization prompt embedding the video
// title and the cleaned transcript.
func Prompt(title, transcript string) string {
	return fmt.Sprintf(summaryPrompt, title, transcript)
}
