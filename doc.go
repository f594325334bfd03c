// Package admindash provides top-level metadata for the Admin Dashboard API.
//
// @title Admin Dashboard API
// @version 25.10.16.1
// @description Dashboard API over users, projects, tasks, the activity log and aggregate statistics.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Provide the session token as `Bearer <token>`.
package admindash
