package ocr

// detail requests high-resolution image analysis from the model.
const detail = "high"

// Instruction is sent with every plain transcription.
const Instruction = `Transcribe the handwritten text in this image exactly as written.
Preserve line breaks, bullets, numbering, arrows, and the layout of any simple diagrams.
Keep the original language. Do not translate, including mixed-language phrases and slang.
If a word is illegible, write [unreadable] in its place instead of guessing.
Return only the transcription.`

// StructuredInstruction asks for the transcription as strict JSON.
const StructuredInstruction = `Transcribe the handwritten text in this image exactly as written.
Preserve line breaks, bullets, numbering, arrows, and the layout of any simple diagrams.
Keep the original language. Do not translate, including mixed-language phrases and slang.
If a word is illegible, write [unreadable] in its place instead of guessing.

Respond with a single JSON object and nothing else, in this shape:
{
  "cleaned_text": "<the full transcription as one string>",
  "structured_json": {
    "paragraphs": [
      {"type": "paragraph|bullet|numbered|heading|diagram", "text": "<text of the item>"}
    ]
  }
}`
