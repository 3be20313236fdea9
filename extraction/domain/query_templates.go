package domain

// Placeholders recognized by QueryReplacer.
const (
	ProjectIDPlaceholder = "{project_id}"
	RegionPlaceholder    = "{region}"
	DatasetPlaceholder   = "{dataset}"
)

type QueryID string

const (
	Schemata      QueryID = "query1"
	JobsByProject QueryID = "query2"
	Routines      QueryID = "query3"
	Columns       QueryID = "query4"
	Views         QueryID = "query5"
	StorageTables QueryID = "query6"
	Tables        QueryID = "query7"
)

const schemataQueryTpl = `
SELECT
  catalog_name,
  schema_name,
  schema_owner,
  creation_time,
  last_modified_time,
  location
FROM
  ` + "`{project_id}`.`{region}`" + `.INFORMATION_SCHEMA.SCHEMATA
`

const jobsByProjectQueryTpl = `
SELECT
  creation_time,
  a.project_id,
  project_number,
  user_email,
  job_id,
  job_type,
  parent_job_id,
  session_info,
  statement_type,
  start_time,
  end_time,
  query,
  state,
  reservation_id,
  total_bytes_processed,
  a.total_slot_ms,
  total_modified_partitions,
  total_bytes_billed,
  error_result.reason AS error_result_reason,
  error_result.location AS error_result_location,
  error_result.debug_info AS error_result_debug_info,
  error_result.message AS error_result_message,
  cache_hit,
  destination_table.project_id AS destination_project_id,
  destination_table.dataset_id AS destination_dataset_id,
  destination_table.table_id AS destination_table_id,
  referenced_tables,
  labels,
  timeline,
  job_stages
FROM
  ` + "`{project_id}`.`{region}`" + `.INFORMATION_SCHEMA.JOBS_BY_PROJECT AS a
WHERE
  creation_time > TIMESTAMP_SUB(CURRENT_TIMESTAMP(), INTERVAL 1 DAY)
`

const routinesQueryTpl = `
SELECT
  SPECIFIC_CATALOG,
  SPECIFIC_SCHEMA,
  SPECIFIC_NAME,
  ROUTINE_CATALOG,
  ROUTINE_SCHEMA,
  ROUTINE_NAME,
  ROUTINE_TYPE,
  DATA_TYPE,
  ROUTINE_BODY,
  ROUTINE_DEFINITION,
  EXTERNAL_LANGUAGE,
  IS_DETERMINISTIC,
  SECURITY_TYPE,
  CREATED,
  LAST_ALTERED,
  DDL
FROM
  ` + "`{project_id}`.`{region}`" + `.INFORMATION_SCHEMA.ROUTINES
`

const columnsQueryTpl = `
SELECT
  TABLE_CATALOG,
  TABLE_SCHEMA,
  TABLE_NAME,
  COLUMN_NAME,
  ORDINAL_POSITION,
  IS_NULLABLE,
  DATA_TYPE,
  IS_GENERATED,
  GENERATION_EXPRESSION,
  IS_STORED,
  IS_HIDDEN,
  IS_UPDATABLE,
  IS_SYSTEM_DEFINED,
  IS_PARTITIONING_COLUMN,
  CLUSTERING_ORDINAL_POSITION
FROM
  ` + "`{project_id}`.`{region}`" + `.INFORMATION_SCHEMA.COLUMNS
WHERE
  TABLE_SCHEMA = '{dataset}'
`

const viewsQueryTpl = `
SELECT
  TABLE_CATALOG,
  TABLE_SCHEMA,
  TABLE_NAME,
  VIEW_DEFINITION,
  CHECK_OPTION,
  USE_STANDARD_SQL
FROM
  ` + "`{project_id}`.`{region}`" + `.INFORMATION_SCHEMA.VIEWS
WHERE
  TABLE_SCHEMA = '{dataset}'
`

// __TABLES__ is a per dataset meta table, it has no region qualifier.
const storageTablesQueryTpl = `
SELECT
  project_id,
  dataset_id,
  table_id,
  creation_time,
  last_modified_time,
  row_count,
  size_bytes,
  type
FROM
  ` + "`{project_id}`.{dataset}.__TABLES__" + `
`

const tablesQueryTpl = `
SELECT
  TABLE_CATALOG,
  TABLE_SCHEMA,
  TABLE_NAME,
  TABLE_TYPE,
  IS_INSERTABLE_INTO,
  IS_TYPED,
  CREATION_TIME,
  DDL
FROM
  ` + "`{project_id}`.`{region}`" + `.INFORMATION_SCHEMA.TABLES
WHERE
  TABLE_SCHEMA = '{dataset}'
`

// DefaultCatalog returns the built-in extraction queries in execution order.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: Schemata, Scope: ScopeProjectWide, Template: schemataQueryTpl},
		{ID: JobsByProject, Scope: ScopeProjectWide, Template: jobsByProjectQueryTpl},
		{ID: Routines, Scope: ScopeProjectWide, Template: routinesQueryTpl},
		{ID: Columns, Scope: ScopeDatasetScoped, Template: columnsQueryTpl},
		{ID: Views, Scope: ScopeDatasetScoped, Template: viewsQueryTpl},
		{ID: StorageTables, Scope: ScopeDatasetScopedMerge, Template: storageTablesQueryTpl},
		{ID: Tables, Scope: ScopeDatasetScoped, Template: tablesQueryTpl},
	}
}
