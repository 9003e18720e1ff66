// Package catalyst converts between richly typed in-memory objects and plain,
// transport-friendly data structures.
//
// - Dump: object -> plain mapping, driven by per-field converters
// - Load: raw mapping -> validated typed values, aggregated into a LoadResult
// - Partial-failure semantics: one field's failure never aborts the pass;
//   every processed field lands in exactly one of valid/invalid
// - Nested schemas embed child LoadResults so callers can walk error trees
//
// Design policy:
// - Keep only public types in the root package; put helpers under internal/.
// - Place the field-type catalog and the schema builder under dsl/, and
//   wire-format ingestion under source/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := dsl.Object().
//		Field("title", dsl.String().Length(1, 48)).Required().
//		Field("pub_date", dsl.DateTime("%Y/%m/%d %H:%M:%S")).
//		MustBuild()
//
//	res, err := s.Load(ctx, data)
//	if !res.IsValid() {
//		// res.Errors and res.InvalidData hold per-field detail
//	}
package catalyst
