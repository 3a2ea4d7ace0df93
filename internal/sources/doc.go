// Package sources retrieves catalog data from external data stores.
//
// A SourceHandler validates its part of the source configuration, fetches
// the full catalog and reports a content hash that the sync manager uses to
// detect changes without re-parsing.
//
// Implementations:
//   - fileSourceHandler reads a JSON or YAML catalog from the local filesystem
//   - apiSourceHandler reads the playlists and videos tables of a PostgREST
//     style API, such as a Supabase project, with both requests in flight at once
//   - databaseSourceHandler queries the same tables directly through pgx
//
// Use NewSourceHandlerFactory to create the handler matching a source type.
package sources
