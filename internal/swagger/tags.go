package swagger

// @Tag.name Meta
// @Tag.description Health checks and metadata about the dashboard service.

// @Tag.name Auth
// @Tag.description Sign-up, sign-in and session management.

// @Tag.name Dashboard
// @Tag.description Statistics, overview, activity log and reports.

// @Tag.name Users
// @Tag.description Directory profiles and account administration.

// @Tag.name Projects
// @Tag.description Projects owned by dashboard users.

// @Tag.name Tasks
// @Tag.description Tasks inside projects.

// @Tag.name Streams
// @Tag.description WebSocket live views.
