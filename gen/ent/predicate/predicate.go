// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractionDefinition is the predicate function for extractiondefinition builders.
type ExtractionDefinition func(*sql.Selector)

// ExtractionResult is the predicate function for extractionresult builders.
type ExtractionResult func(*sql.Selector)

// ProcessingSession is the predicate function for processingsession builders.
type ProcessingSession func(*sql.Selector)

// Summarization is the predicate function for summarization builders.
type Summarization func(*sql.Selector)

// SummarizationPrompt is the predicate function for summarizationprompt builders.
type SummarizationPrompt func(*sql.Selector)

// TranscriptFile is the predicate function for transcriptfile builders.
type TranscriptFile func(*sql.Selector)
