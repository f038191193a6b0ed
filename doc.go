// Package typecms generates an admin interface and a JSON API from entity
// schemas.
//
// An entity is declared once as a schema of typed properties; the app then
// serves HTML list, create and edit pages for it, plus a JSON CRUD API under
// /api/v1, without any per-entity handler code.
//
// # Quick Start
//
// Declare a schema, register it on an app, and run:
//
//	post, err := schema.New("post",
//	    schema.WithIDField("id"),
//	    schema.WithField("title", property.Text{}),
//	    schema.WithField("content", property.Markdown{}),
//	    schema.WithField("draft", property.Bool{}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	app := typecms.New(
//	    typecms.WithEntity(post),
//	)
//
//	if err := app.Run(":8080"); err != nil {
//	    log.Fatal(err)
//	}
//
// This mounts, among others, GET /posts, GET /posts/add, GET /posts/{id}
// for the admin UI and GET/POST /api/v1/posts for the API.
//
// # Sources and capabilities
//
// By default records are kept in the store configured with [WithStore]
// (in-memory unless set). An entity can instead be served from any value
// implementing some of the entity capability interfaces (entity.Getter,
// entity.Lister, entity.Creator, entity.Updater, entity.Deleter); routes
// are mounted only for the capabilities the source implements:
//
//	typecms.WithEntity(post, typecms.WithSource(archive)) // read-only source
//
// # Hooks
//
// Lifecycle hooks run before mutations and can veto them:
//
//	typecms.WithEntity(post, typecms.WithEntityHooks(entity.Hooks{
//	    OnCreate: func(ctx context.Context, ext entity.Ext, rec schema.Record) error {
//	        rec["author"] = ext.(string)
//	        return nil
//	    },
//	}))
//
// The ext value is produced per request by the extractor configured with
// [WithExtExtractor], typically carrying the authenticated user.
//
// # Uploads
//
// File and image properties need blob storage:
//
//	typecms.WithUploads(blob.NewDisk("./uploads"))
//
// Uploaded files are staged during form decoding and promoted to storage
// only when the whole submission decodes cleanly.
package typecms
