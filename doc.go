// Package tradebook is a personal trade-discipline journal. It is designed
// to be local-first and auditable: every asset, assessment and action lives
// in a single JSON document the user fully owns, and nothing is ever
// physically deleted.
//
// The core functionalities include:
//   - Recommendation Engine: a pure, deterministic mapping from a fixed
//     questionnaire of categorical risk factors to an outcome tier (A-D), a
//     recommendation type and a recommendation strength.
//   - Journal Records: assets under observation, append-only assessments,
//     planned and executed actions (with an explicit deviation gate and
//     emergency backfill handling), triggers and their firing logs, plus
//     supporting positions, evidence and reviews.
//   - Data Consistency: a normalize, migrate, validate pipeline around every
//     persistence boundary, so the stored document always conforms to the
//     current schema and corrupt data self-heals instead of crashing.
//   - Persistence Gateway: guarded load/save/update/reset plus portable
//     export and import for backups.
//
// This package serves as the foundational logic for the `tb` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package tradebook
