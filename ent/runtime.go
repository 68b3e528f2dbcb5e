// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/deathnote2501/fia-v3.0-sub000/ent/learnersession"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/llmrequestevent"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/module"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/schema"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/slide"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/stage"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/submodule"
	"github.com/deathnote2501/fia-v3.0-sub000/ent/trainingplan"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	learnersessionFields := schema.LearnerSession{}.Fields()
	_ = learnersessionFields
	// learnersessionDescCurrentSlideNumber is the schema descriptor for current_slide_number field.
	learnersessionDescCurrentSlideNumber := learnersessionFields[3].Descriptor()
	// learnersession.DefaultCurrentSlideNumber holds the default value on creation for the current_slide_number field.
	learnersession.DefaultCurrentSlideNumber = learnersessionDescCurrentSlideNumber.Default.(int)
	// learnersessionDescCreatedAt is the schema descriptor for created_at field.
	learnersessionDescCreatedAt := learnersessionFields[5].Descriptor()
	// learnersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	learnersession.DefaultCreatedAt = learnersessionDescCreatedAt.Default.(func() time.Time)
	// learnersessionDescUpdatedAt is the schema descriptor for updated_at field.
	learnersessionDescUpdatedAt := learnersessionFields[6].Descriptor()
	// learnersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learnersession.DefaultUpdatedAt = learnersessionDescUpdatedAt.Default.(func() time.Time)
	// learnersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learnersession.UpdateDefaultUpdatedAt = learnersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// learnersessionDescID is the schema descriptor for id field.
	learnersessionDescID := learnersessionFields[0].Descriptor()
	// learnersession.DefaultID holds the default value on creation for the id field.
	learnersession.DefaultID = learnersessionDescID.Default.(func() uuid.UUID)
	moduleFields := schema.Module{}.Fields()
	_ = moduleFields
	// moduleDescName is the schema descriptor for name field.
	moduleDescName := moduleFields[1].Descriptor()
	// module.NameValidator is a validator for the "name" field. It is called by the builders before save.
	module.NameValidator = moduleDescName.Validators[0].(func(string) error)
	// moduleDescPosition is the schema descriptor for position field.
	moduleDescPosition := moduleFields[2].Descriptor()
	// module.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	module.PositionValidator = moduleDescPosition.Validators[0].(func(int) error)
	// moduleDescID is the schema descriptor for id field.
	moduleDescID := moduleFields[0].Descriptor()
	// module.DefaultID holds the default value on creation for the id field.
	module.DefaultID = moduleDescID.Default.(func() uuid.UUID)
	slideFields := schema.Slide{}.Fields()
	_ = slideFields
	// slideDescTitle is the schema descriptor for title field.
	slideDescTitle := slideFields[1].Descriptor()
	// slide.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	slide.TitleValidator = slideDescTitle.Validators[0].(func(string) error)
	// slideDescPosition is the schema descriptor for position field.
	slideDescPosition := slideFields[4].Descriptor()
	// slide.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	slide.PositionValidator = slideDescPosition.Validators[0].(func(int) error)
	// slideDescGlobalPosition is the schema descriptor for global_position field.
	slideDescGlobalPosition := slideFields[5].Descriptor()
	// slide.GlobalPositionValidator is a validator for the "global_position" field. It is called by the builders before save.
	slide.GlobalPositionValidator = slideDescGlobalPosition.Validators[0].(func(int) error)
	// slideDescID is the schema descriptor for id field.
	slideDescID := slideFields[0].Descriptor()
	// slide.DefaultID holds the default value on creation for the id field.
	slide.DefaultID = slideDescID.Default.(func() uuid.UUID)
	stageFields := schema.Stage{}.Fields()
	_ = stageFields
	// stageDescNumber is the schema descriptor for number field.
	stageDescNumber := stageFields[1].Descriptor()
	// stage.NumberValidator is a validator for the "number" field. It is called by the builders before save.
	stage.NumberValidator = func() func(int) error {
		validators := stageDescNumber.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(number int) error {
			for _, fn := range fns {
				if err := fn(number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// stageDescTitle is the schema descriptor for title field.
	stageDescTitle := stageFields[2].Descriptor()
	// stage.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	stage.TitleValidator = stageDescTitle.Validators[0].(func(string) error)
	// stageDescID is the schema descriptor for id field.
	stageDescID := stageFields[0].Descriptor()
	// stage.DefaultID holds the default value on creation for the id field.
	stage.DefaultID = stageDescID.Default.(func() uuid.UUID)
	submoduleFields := schema.Submodule{}.Fields()
	_ = submoduleFields
	// submoduleDescName is the schema descriptor for name field.
	submoduleDescName := submoduleFields[1].Descriptor()
	// submodule.NameValidator is a validator for the "name" field. It is called by the builders before save.
	submodule.NameValidator = submoduleDescName.Validators[0].(func(string) error)
	// submoduleDescPosition is the schema descriptor for position field.
	submoduleDescPosition := submoduleFields[2].Descriptor()
	// submodule.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	submodule.PositionValidator = submoduleDescPosition.Validators[0].(func(int) error)
	// submoduleDescSlideCount is the schema descriptor for slide_count field.
	submoduleDescSlideCount := submoduleFields[3].Descriptor()
	// submodule.SlideCountValidator is a validator for the "slide_count" field. It is called by the builders before save.
	submodule.SlideCountValidator = func() func(int) error {
		validators := submoduleDescSlideCount.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(slide_count int) error {
			for _, fn := range fns {
				if err := fn(slide_count); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// submoduleDescID is the schema descriptor for id field.
	submoduleDescID := submoduleFields[0].Descriptor()
	// submodule.DefaultID holds the default value on creation for the id field.
	submodule.DefaultID = submoduleDescID.Default.(func() uuid.UUID)
	trainingplanFields := schema.TrainingPlan{}.Fields()
	_ = trainingplanFields
	// trainingplanDescDocumentKey is the schema descriptor for document_key field.
	trainingplanDescDocumentKey := trainingplanFields[3].Descriptor()
	// trainingplan.DefaultDocumentKey holds the default value on creation for the document_key field.
	trainingplan.DefaultDocumentKey = trainingplanDescDocumentKey.Default.(string)
	// trainingplanDescCreatedAt is the schema descriptor for created_at field.
	trainingplanDescCreatedAt := trainingplanFields[4].Descriptor()
	// trainingplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	trainingplan.DefaultCreatedAt = trainingplanDescCreatedAt.Default.(func() time.Time)
	// trainingplanDescID is the schema descriptor for id field.
	trainingplanDescID := trainingplanFields[0].Descriptor()
	// trainingplan.DefaultID holds the default value on creation for the id field.
	trainingplan.DefaultID = trainingplanDescID.Default.(func() uuid.UUID)
}
