package summarizer

// defaultSegmentPrompt asks for a narrative summary broken into topic
// blocks whose headings carry the speaker and a timestamp, so the
// refinement pass can extract mentions from the result.
const defaultSegmentPrompt = `You are a technical meeting summarizer. Summarize the transcript excerpt below.

Instructions:
1. Break the summary into the distinct topics discussed, in order
2. Start each topic with a heading of the exact form: **Topic Title - Speaker Name** (H:MM:SS):
   where the timestamp is taken from the transcript line where the topic starts
3. After each heading, write one detailed paragraph of the discussion
4. Use **bold** for important technical terms
5. Be technical and precise; do not invent content

Transcript (each line is "H:MM:SS Speaker: text"):
---
%s
---`

// defaultTopicPrompt asks for a concise single-paragraph summary of one
// speaker's contribution to one topic.
const defaultTopicPrompt = `Generate a concise summary of this speaker's contribution to a specific topic.

Instructions:
1. Write a single paragraph with no line breaks
2. Use **bold** for important technical terms and concepts
3. Don't include the speaker's name; it is shown separately
4. Be technical and precise

TRANSCRIPT FROM %s:

%s`
