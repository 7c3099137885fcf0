// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/classpulse/classpulse/ent/assignment"
	"github.com/classpulse/classpulse/ent/caserecord"
	"github.com/classpulse/classpulse/ent/compliancedeadline"
	"github.com/classpulse/classpulse/ent/llmrequestevent"
	"github.com/classpulse/classpulse/ent/masteryrecord"
	"github.com/classpulse/classpulse/ent/schema"
	"github.com/classpulse/classpulse/ent/student"
	"github.com/classpulse/classpulse/ent/submission"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assignmentFields := schema.Assignment{}.Fields()
	_ = assignmentFields
	// assignmentDescAssignmentID is the schema descriptor for assignment_id field.
	assignmentDescAssignmentID := assignmentFields[0].Descriptor()
	// assignment.AssignmentIDValidator is a validator for the "assignment_id" field. It is called by the builders before save.
	assignment.AssignmentIDValidator = assignmentDescAssignmentID.Validators[0].(func(string) error)
	// assignmentDescClassID is the schema descriptor for class_id field.
	assignmentDescClassID := assignmentFields[1].Descriptor()
	// assignment.DefaultClassID holds the default value on creation for the class_id field.
	assignment.DefaultClassID = assignmentDescClassID.Default.(string)
	// assignmentDescTitle is the schema descriptor for title field.
	assignmentDescTitle := assignmentFields[2].Descriptor()
	// assignment.DefaultTitle holds the default value on creation for the title field.
	assignment.DefaultTitle = assignmentDescTitle.Default.(string)
	caserecordFields := schema.CaseRecord{}.Fields()
	_ = caserecordFields
	// caserecordDescCaseManagerID is the schema descriptor for case_manager_id field.
	caserecordDescCaseManagerID := caserecordFields[0].Descriptor()
	// caserecord.CaseManagerIDValidator is a validator for the "case_manager_id" field. It is called by the builders before save.
	caserecord.CaseManagerIDValidator = caserecordDescCaseManagerID.Validators[0].(func(string) error)
	// caserecordDescStudentID is the schema descriptor for student_id field.
	caserecordDescStudentID := caserecordFields[1].Descriptor()
	// caserecord.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	caserecord.StudentIDValidator = caserecordDescStudentID.Validators[0].(func(string) error)
	compliancedeadlineFields := schema.ComplianceDeadline{}.Fields()
	_ = compliancedeadlineFields
	// compliancedeadlineDescDeadlineID is the schema descriptor for deadline_id field.
	compliancedeadlineDescDeadlineID := compliancedeadlineFields[0].Descriptor()
	// compliancedeadline.DeadlineIDValidator is a validator for the "deadline_id" field. It is called by the builders before save.
	compliancedeadline.DeadlineIDValidator = compliancedeadlineDescDeadlineID.Validators[0].(func(string) error)
	// compliancedeadlineDescStudentID is the schema descriptor for student_id field.
	compliancedeadlineDescStudentID := compliancedeadlineFields[1].Descriptor()
	// compliancedeadline.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	compliancedeadline.StudentIDValidator = compliancedeadlineDescStudentID.Validators[0].(func(string) error)
	// compliancedeadlineDescType is the schema descriptor for type field.
	compliancedeadlineDescType := compliancedeadlineFields[2].Descriptor()
	// compliancedeadline.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	compliancedeadline.TypeValidator = compliancedeadlineDescType.Validators[0].(func(string) error)
	// compliancedeadlineDescStatus is the schema descriptor for status field.
	compliancedeadlineDescStatus := compliancedeadlineFields[4].Descriptor()
	// compliancedeadline.DefaultStatus holds the default value on creation for the status field.
	compliancedeadline.DefaultStatus = compliancedeadlineDescStatus.Default.(string)
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
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescStudentID is the schema descriptor for student_id field.
	masteryrecordDescStudentID := masteryrecordFields[0].Descriptor()
	// masteryrecord.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	masteryrecord.StudentIDValidator = masteryrecordDescStudentID.Validators[0].(func(string) error)
	// masteryrecordDescStandardID is the schema descriptor for standard_id field.
	masteryrecordDescStandardID := masteryrecordFields[1].Descriptor()
	// masteryrecord.StandardIDValidator is a validator for the "standard_id" field. It is called by the builders before save.
	masteryrecord.StandardIDValidator = masteryrecordDescStandardID.Validators[0].(func(string) error)
	// masteryrecordDescStandardDescription is the schema descriptor for standard_description field.
	masteryrecordDescStandardDescription := masteryrecordFields[2].Descriptor()
	// masteryrecord.DefaultStandardDescription holds the default value on creation for the standard_description field.
	masteryrecord.DefaultStandardDescription = masteryrecordDescStandardDescription.Default.(string)
	// masteryrecordDescSubject is the schema descriptor for subject field.
	masteryrecordDescSubject := masteryrecordFields[3].Descriptor()
	// masteryrecord.DefaultSubject holds the default value on creation for the subject field.
	masteryrecord.DefaultSubject = masteryrecordDescSubject.Default.(string)
	// masteryrecordDescLevel is the schema descriptor for level field.
	masteryrecordDescLevel := masteryrecordFields[4].Descriptor()
	// masteryrecord.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	masteryrecord.LevelValidator = masteryrecordDescLevel.Validators[0].(func(string) error)
	studentFields := schema.Student{}.Fields()
	_ = studentFields
	// studentDescStudentID is the schema descriptor for student_id field.
	studentDescStudentID := studentFields[0].Descriptor()
	// student.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	student.StudentIDValidator = studentDescStudentID.Validators[0].(func(string) error)
	// studentDescName is the schema descriptor for name field.
	studentDescName := studentFields[1].Descriptor()
	// student.NameValidator is a validator for the "name" field. It is called by the builders before save.
	student.NameValidator = studentDescName.Validators[0].(func(string) error)
	// studentDescEmail is the schema descriptor for email field.
	studentDescEmail := studentFields[2].Descriptor()
	// student.DefaultEmail holds the default value on creation for the email field.
	student.DefaultEmail = studentDescEmail.Default.(string)
	// studentDescClassID is the schema descriptor for class_id field.
	studentDescClassID := studentFields[3].Descriptor()
	// student.DefaultClassID holds the default value on creation for the class_id field.
	student.DefaultClassID = studentDescClassID.Default.(string)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescStudentID is the schema descriptor for student_id field.
	submissionDescStudentID := submissionFields[0].Descriptor()
	// submission.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	submission.StudentIDValidator = submissionDescStudentID.Validators[0].(func(string) error)
	// submissionDescAssignmentID is the schema descriptor for assignment_id field.
	submissionDescAssignmentID := submissionFields[1].Descriptor()
	// submission.AssignmentIDValidator is a validator for the "assignment_id" field. It is called by the builders before save.
	submission.AssignmentIDValidator = submissionDescAssignmentID.Validators[0].(func(string) error)
	// submissionDescSubject is the schema descriptor for subject field.
	submissionDescSubject := submissionFields[2].Descriptor()
	// submission.DefaultSubject holds the default value on creation for the subject field.
	submission.DefaultSubject = submissionDescSubject.Default.(string)
	// submissionDescTotalScore is the schema descriptor for total_score field.
	submissionDescTotalScore := submissionFields[3].Descriptor()
	// submission.DefaultTotalScore holds the default value on creation for the total_score field.
	submission.DefaultTotalScore = submissionDescTotalScore.Default.(float64)
	// submissionDescMaxScore is the schema descriptor for max_score field.
	submissionDescMaxScore := submissionFields[4].Descriptor()
	// submission.DefaultMaxScore holds the default value on creation for the max_score field.
	submission.DefaultMaxScore = submissionDescMaxScore.Default.(float64)
	// submissionDescStatus is the schema descriptor for status field.
	submissionDescStatus := submissionFields[5].Descriptor()
	// submission.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	submission.StatusValidator = submissionDescStatus.Validators[0].(func(string) error)
}
