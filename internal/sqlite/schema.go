// Package sqlite implements the SQLite backend for registrar: the schema
// catalog and the generic record store.
package sqlite

// Schema DDL for the fixed relations. Every statement is idempotent so Attach
// can run them against an existing file.
const (
	createFaculty = `CREATE TABLE IF NOT EXISTS Faculty (
    id INTEGER PRIMARY KEY AUTOINCREMENT UNIQUE,
    name TEXT NOT NULL,
    dean TEXT NOT NULL,
    office INTEGER NOT NULL
);`

	createStudGroup = `CREATE TABLE IF NOT EXISTS StudGroup (
    id INTEGER PRIMARY KEY AUTOINCREMENT UNIQUE,
    name INTEGER,
    FacultyId INTEGER,
    FOREIGN KEY (FacultyId) REFERENCES Faculty(id)
);`

	createStudent = `CREATE TABLE IF NOT EXISTS Student (
    id INTEGER PRIMARY KEY AUTOINCREMENT UNIQUE,
    GroupId INTEGER NOT NULL,
    Name TEXT NOT NULL,
    Surname TEXT NOT NULL,
    Patronym TEXT NOT NULL,
    DateOfBirth TEXT NOT NULL,
    Sex TEXT NOT NULL,
    Address TEXT NOT NULL,
    FOREIGN KEY (GroupId) REFERENCES StudGroup(id)
);`

	createBenefit = `CREATE TABLE IF NOT EXISTS Benefit (
    id INTEGER PRIMARY KEY AUTOINCREMENT UNIQUE,
    StudentId INTEGER NOT NULL,
    BenefitType TEXT NOT NULL,
    Document TEXT,
    IssueDate TEXT,
    FOREIGN KEY (StudentId) REFERENCES Student(id)
);`

	createRelative = `CREATE TABLE IF NOT EXISTS Relative (
    id INTEGER PRIMARY KEY AUTOINCREMENT UNIQUE,
    Name TEXT NOT NULL,
    Surname TEXT NOT NULL,
    Patronym TEXT NOT NULL,
    DateOfBirth TEXT NOT NULL,
    Address TEXT NOT NULL
);`

	createStudentToRelative = `CREATE TABLE IF NOT EXISTS StudentToRelative (
    id INTEGER PRIMARY KEY AUTOINCREMENT UNIQUE,
    StudentId INTEGER NOT NULL,
    Relationship TEXT NOT NULL,
    RelativeId INTEGER NOT NULL,
    FOREIGN KEY (StudentId) REFERENCES Student(id),
    FOREIGN KEY (RelativeId) REFERENCES Relative(id)
);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createFaculty,
	createStudGroup,
	createStudent,
	createBenefit,
	createRelative,
	createStudentToRelative,
}
