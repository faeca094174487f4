package errors

import (
	stderrors "errors"
)

// Sentinel errors for the js-imports-group application
var (
	ErrUnmatchedImport        = stderrors.New("import matches no rule")
	ErrInvalidImport          = stderrors.New("invalid import record")
	ErrUnsupportedImportBlock = stderrors.New("unsupported import block")
	ErrSyntax                 = stderrors.New("syntax error in import block")
	ErrUnsupportedFileType    = stderrors.New("unsupported file type")
	ErrFilesNotFormatted      = stderrors.New("imports are not sorted")
)

// Error message constants for the js-imports-group application
const (
	// File processing errors
	ErrMsgFailedToReadFile      = "failed to read file"
	ErrMsgFailedToParseFile     = "failed to parse file"
	ErrMsgFailedToSortImports   = "failed to sort imports"
	ErrMsgFailedToWriteFile     = "failed to write file"
	ErrMsgFailedToLoadConfig    = "failed to load config"
	ErrMsgFailedToRenderRules   = "failed to render rules"
	ErrMsgUnknownRulesFormat    = "unknown rules format %q"
	ErrMsgNoGrammarForExtension = "no grammar for extension %q"
	ErrMsgCommentInImportBlock  = "comment at byte %d inside the import block"
	ErrMsgRequireImport         = "import-require form at byte %d"
	ErrMsgMalformedImport       = "malformed import statement at byte %d"

	// Directory processing errors
	ErrMsgFailedToCheckPath    = "failed to check path"
	ErrMsgFailedToFindFiles    = "failed to find source files in directory"
	ErrMsgFilesFailedToProcess = "%d files failed to process"
	ErrMsgFilesNeedFormatting  = "%d files need formatting"

	// Info/warning messages
	WarnMsgProcessingDirWithoutInPlace = "Warning: Processing directory without --in-place flag. No files will be modified."
	InfoMsgUseInPlaceFlag              = "Use --in-place flag to modify files, --diff to preview changes or specify a single file for stdout output."
	InfoMsgNoSourceFilesFound          = "No source files found in directory: %s"
	InfoMsgFoundSourceFiles            = "Found %d source files in directory: %s"
	InfoMsgProjectRoot                 = "Project root: %s"
	InfoMsgProcessedFiles              = "Processed: %s"
	InfoMsgNeedsFormatting             = "Not sorted: %s"
	InfoMsgErrorProcessing             = "Error processing %s: %v"
	InfoMsgProcessedCount              = "\nProcessed %d files successfully"
	InfoMsgErrorCount                  = ", %d files had errors"
)
