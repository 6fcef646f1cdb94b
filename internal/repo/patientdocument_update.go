// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fundacionaurora/clinica_backend/internal/repo/patient"
	"github.com/fundacionaurora/clinica_backend/internal/repo/patientdocument"
	"github.com/fundacionaurora/clinica_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// PatientDocumentUpdate is the builder for updating PatientDocument entities.
type PatientDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *PatientDocumentMutation
}

// Where appends a list predicates to the PatientDocumentUpdate builder.
func (_u *PatientDocumentUpdate) Where(ps ...predicate.PatientDocument) *PatientDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientDocumentUpdate) SetPatientID(v uuid.UUID) *PatientDocumentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillablePatientID(v *uuid.UUID) *PatientDocumentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *PatientDocumentUpdate) SetFileKey(v string) *PatientDocumentUpdate {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableFileKey(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *PatientDocumentUpdate) SetFileName(v string) *PatientDocumentUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableFileName(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *PatientDocumentUpdate) SetContentType(v string) *PatientDocumentUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableContentType(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *PatientDocumentUpdate) SetSizeBytes(v int64) *PatientDocumentUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableSizeBytes(v *int64) *PatientDocumentUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *PatientDocumentUpdate) AddSizeBytes(v int64) *PatientDocumentUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *PatientDocumentUpdate) SetUploadedBy(v uuid.UUID) *PatientDocumentUpdate {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableUploadedBy(v *uuid.UUID) *PatientDocumentUpdate {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientDocumentUpdate) SetPatient(v *Patient) *PatientDocumentUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the PatientDocumentMutation object of the builder.
func (_u *PatientDocumentUpdate) Mutation() *PatientDocumentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientDocumentUpdate) ClearPatient() *PatientDocumentUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientDocumentUpdate) check() error {
	if v, ok := _u.mutation.FileKey(); ok {
		if err := patientdocument.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.file_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := patientdocument.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := patientdocument.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.content_type": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientDocument.patient"`)
	}
	return nil
}

func (_u *PatientDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientdocument.Table, patientdocument.Columns, sqlgraph.NewFieldSpec(patientdocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(patientdocument.FieldFileKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(patientdocument.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(patientdocument.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(patientdocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(patientdocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(patientdocument.FieldUploadedBy, field.TypeUUID, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientdocument.PatientTable,
			Columns: []string{patientdocument.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientdocument.PatientTable,
			Columns: []string{patientdocument.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientDocumentUpdateOne is the builder for updating a single PatientDocument entity.
type PatientDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientDocumentMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientDocumentUpdateOne) SetPatientID(v uuid.UUID) *PatientDocumentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillablePatientID(v *uuid.UUID) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *PatientDocumentUpdateOne) SetFileKey(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableFileKey(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *PatientDocumentUpdateOne) SetFileName(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableFileName(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *PatientDocumentUpdateOne) SetContentType(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableContentType(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *PatientDocumentUpdateOne) SetSizeBytes(v int64) *PatientDocumentUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableSizeBytes(v *int64) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *PatientDocumentUpdateOne) AddSizeBytes(v int64) *PatientDocumentUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *PatientDocumentUpdateOne) SetUploadedBy(v uuid.UUID) *PatientDocumentUpdateOne {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableUploadedBy(v *uuid.UUID) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientDocumentUpdateOne) SetPatient(v *Patient) *PatientDocumentUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the PatientDocumentMutation object of the builder.
func (_u *PatientDocumentUpdateOne) Mutation() *PatientDocumentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientDocumentUpdateOne) ClearPatient() *PatientDocumentUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the PatientDocumentUpdate builder.
func (_u *PatientDocumentUpdateOne) Where(ps ...predicate.PatientDocument) *PatientDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientDocumentUpdateOne) Select(field string, fields ...string) *PatientDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientDocument entity.
func (_u *PatientDocumentUpdateOne) Save(ctx context.Context) (*PatientDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientDocumentUpdateOne) SaveX(ctx context.Context) *PatientDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.FileKey(); ok {
		if err := patientdocument.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.file_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := patientdocument.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentType(); ok {
		if err := patientdocument.ContentTypeValidator(v); err != nil {
			return &ValidationError{Name: "content_type", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.content_type": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientDocument.patient"`)
	}
	return nil
}

func (_u *PatientDocumentUpdateOne) sqlSave(ctx context.Context) (_node *PatientDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientdocument.Table, patientdocument.Columns, sqlgraph.NewFieldSpec(patientdocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PatientDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientdocument.FieldID)
		for _, f := range fields {
			if !patientdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patientdocument.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(patientdocument.FieldFileKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(patientdocument.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(patientdocument.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(patientdocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(patientdocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(patientdocument.FieldUploadedBy, field.TypeUUID, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientdocument.PatientTable,
			Columns: []string{patientdocument.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientdocument.PatientTable,
			Columns: []string{patientdocument.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PatientDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
