package content

import "learnhub-content/internal/domain"

func architectureTopic() domain.TopicSeed {
	return domain.TopicSeed{
		Slug:          "basic-architecture",
		Name:          "Architecture Fundamentals",
		Description:   "How software systems are structured at the highest level, and how that structure shapes everything built on top of it.",
		EstimatedTime: 180,
		OrderIndex:    1,
	}
}

func basicArchitecture() domain.Bundle {
	return domain.Bundle{
		ID:    "0001_basic_architecture",
		Topic: architectureTopic(),
		Lessons: []domain.LessonSeed{
			{
				Slug:            "what-is-software-architecture",
				Title:           "What is Software Architecture?",
				Summary:         "An introduction to what architecture means for a software system and why it matters long before the first deadline slips.",
				DifficultyLevel: domain.DifficultyBeginner,
				EstimatedTime:   30,
				OrderIndex:      1,
				KeyPoints: []string{
					"Architecture is the high-level structure of a system: its components and the relationships between them",
					"Good architecture enables change, scalability, and maintainability",
					"Architecture decisions are the ones that are expensive to reverse",
					"There is no single correct architecture, only trade-offs that fit a context",
				},
				Content: `# What is Software Architecture?

Software architecture is the high-level structure of a system: the components
it is made of, the responsibilities each one carries, and the relationships
between them. If the source code is a city, the architecture is the street
plan. You can repaint a building in an afternoon, but moving a street is a
different kind of project.

## Why it matters

Most systems do not fail because a single function was slow. They fail
because change became too expensive: every feature touched five modules,
every deploy risked three teams, and nobody could say with confidence what
depended on what. Architecture is the discipline of keeping change cheap.

A useful working definition comes from the question: *which decisions would
be expensive to reverse?* The database you commit to, the boundaries between
services, the way modules are allowed to talk to each other. Those are
architectural. The name of a local variable is not.

## Structure, not technology

It is tempting to describe an architecture as a list of products: "we use
Kubernetes, Postgres and Kafka". That is an inventory, not an architecture.
The architecture is the set of rules that says which parts may know about
which other parts, where state lives, and how the system is allowed to grow.

## Trade-offs all the way down

There is no universally correct architecture. A monolith deployed twice a
day can outperform a microservice fleet operated by a team of three. The
architect's job is not to pick the fashionable option but to understand the
forces in play:

- How many people work on the system, and how are they organised?
- How often does it need to change, and in which places?
- What must keep working when one part fails?

Every structural choice buys something and pays for it elsewhere. Writing
those trade-offs down is half the job; the next lesson's topic, layering,
is one of the oldest and most reliable ways to spend that budget well.`,
			},
			{
				Slug:            "layered-architecture",
				Title:           "Layered Architecture",
				Summary:         "The classic presentation/domain/persistence split, what each layer owns, and the dependency rule that keeps the layers honest.",
				DifficultyLevel: domain.DifficultyBeginner,
				EstimatedTime:   40,
				OrderIndex:      2,
				KeyPoints: []string{
					"Layers group code by technical responsibility: presentation, domain, persistence",
					"Dependencies point downwards only; lower layers never import upper ones",
					"The domain layer holds the business rules and knows nothing about HTTP or SQL",
					"Strict layering trades some indirection for replaceability and testability",
				},
				Content: `# Layered Architecture

The layered architecture is the oldest structural pattern still in daily
use. Code is grouped by technical responsibility into horizontal layers,
and a single rule governs them: dependencies point downwards.

## The classic three layers

1. **Presentation** - accepts input and renders output: HTTP handlers,
   CLI commands, message consumers. It translates the outside world into
   calls on the layer below.
2. **Domain** (also called business or service layer) - the rules of the
   application. This layer decides what is allowed, what happens next,
   and what an operation means. It knows nothing about HTTP status codes
   or SQL dialects.
3. **Persistence** - gets data in and out of storage. Repositories and
   data mappers live here.

## The dependency rule

Presentation may call the domain. The domain may call persistence
interfaces. Nothing ever imports upwards. The moment a domain object
returns an HTTP error code, the layering is gone and the domain can no
longer be reused or tested without a web server.

In practice the rule is enforced by interfaces owned by the layer that
consumes them:

    type LessonStore interface {
        LessonBySlug(ctx context.Context, slug string) (Lesson, error)
    }

The domain defines the interface; the persistence layer implements it.
Swapping Postgres for SQLite in tests becomes a one-line change.

## What layering costs

Strict layering introduces indirection. Small applications feel it most:
a one-table CRUD app does not need four files per field. The pay-off
arrives with change: when the storage engine, the transport, or the
framework needs replacing, the blast radius is a single layer.`,
			},
		},
		ExamplesBySlug: map[string][]domain.CodeExampleSeed{
			"layered-architecture": {
				{
					Title:    "A domain service behind an interface",
					Language: "go",
					Code: `type LessonStore interface {
    LessonBySlug(ctx context.Context, slug string) (Lesson, error)
}

type CourseService struct {
    store LessonStore
}

func (s *CourseService) NextLesson(ctx context.Context, slug string) (Lesson, error) {
    lesson, err := s.store.LessonBySlug(ctx, slug)
    if err != nil {
        return Lesson{}, fmt.Errorf("load lesson: %w", err)
    }
    return lesson, nil
}`,
					Explanation: "The service depends on an interface it owns, not on a concrete database type. The persistence layer implements LessonStore, so the domain compiles and tests without any database at all.",
					OrderIndex:  1,
				},
			},
		},
		QuestionsBySlug: map[string][]domain.QuizQuestionSeed{
			"what-is-software-architecture": {
				{
					QuestionText: "Which of the following is the best characterization of a software architecture decision?",
					Options: []string{
						"Any decision made by a senior engineer",
						"A decision that would be expensive to reverse later",
						"The choice of variable naming conventions",
						"The list of third-party products a system uses",
					},
					CorrectAnswer: "A decision that would be expensive to reverse later",
					Explanation:   "Cost of reversal is the classic litmus test: structural choices like storage, module boundaries, and communication styles are hard to undo, which is what makes them architectural.",
					Difficulty:    domain.QuizEasy,
					OrderIndex:    1,
				},
				{
					QuestionText: "Why is 'we use Kubernetes, Postgres and Kafka' not an architecture?",
					Options: []string{
						"Because those products are outdated",
						"Because it lists technologies without describing structure, responsibilities, or allowed dependencies",
						"Because architectures must be drawn as diagrams",
						"Because an architecture requires microservices",
					},
					CorrectAnswer: "Because it lists technologies without describing structure, responsibilities, or allowed dependencies",
					Explanation:   "An inventory of products says nothing about which parts may depend on which, where state lives, or how the system may grow. Those rules are the architecture.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    2,
				},
			},
			"layered-architecture": {
				{
					QuestionText: "In a strictly layered architecture, which dependency is forbidden?",
					Options: []string{
						"Presentation calling the domain layer",
						"The domain layer calling a persistence interface",
						"The persistence layer importing domain types to implement an interface",
						"The domain layer importing the HTTP router to return status codes",
					},
					CorrectAnswer: "The domain layer importing the HTTP router to return status codes",
					Explanation:   "Dependencies point downwards. The moment domain code knows about HTTP, it can no longer be reused or tested independently of the web layer.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    1,
				},
				{
					QuestionText: "What is the main cost of strict layering in a small application?",
					Options: []string{
						"It prevents the use of relational databases",
						"Added indirection that feels heavyweight for simple CRUD code",
						"It makes unit testing impossible",
						"It requires a service mesh",
					},
					CorrectAnswer: "Added indirection that feels heavyweight for simple CRUD code",
					Explanation:   "Layering buys replaceability and testability at the price of extra interfaces and files, which a one-table application may never earn back.",
					Difficulty:    domain.QuizEasy,
					OrderIndex:    2,
				},
			},
		},
	}
}

func architectureDecisionRecords() domain.Bundle {
	return domain.Bundle{
		ID: "0002_architecture_decision_records",
		// Shares the basic-architecture topic; attributes must match 0001 exactly.
		Topic: architectureTopic(),
		Lessons: []domain.LessonSeed{
			{
				Slug:            "architecture-decision-records",
				Title:           "Architecture Decision Records",
				Summary:         "A lightweight practice for writing down the why behind structural choices, so future maintainers inherit reasons instead of rumours.",
				DifficultyLevel: domain.DifficultyIntermediate,
				EstimatedTime:   25,
				OrderIndex:      3,
				KeyPoints: []string{
					"An ADR captures one decision: its context, the choice made, and the consequences accepted",
					"ADRs are immutable; a reversed decision gets a new record that supersedes the old one",
					"The archive answers 'why is it like this?' years after the authors have left",
				},
				Content: `# Architecture Decision Records

Every long-lived system accumulates decisions whose reasons have been
forgotten. The database nobody dares to swap, the queue that exists "for
historical reasons". An Architecture Decision Record (ADR) is a short
document, a page at most, that captures one decision while the reasons
are still fresh.

## The format

A minimal ADR has four sections:

- **Title and status** - a number, a name, and whether the decision is
  proposed, accepted, or superseded.
- **Context** - the forces in play: constraints, team shape, load numbers,
  deadlines. Written so a newcomer understands the room.
- **Decision** - one sentence, in the active voice: "We will store lesson
  content as opaque markdown text."
- **Consequences** - what becomes easier, what becomes harder, what risk
  is accepted. Honest consequences are what separate ADRs from marketing.

## Rules that keep the practice alive

ADRs are append-only. When a decision is reversed, the old record is not
edited; a new one is written that supersedes it. The chain of superseded
records is the system's memory: it shows not only what the team decided
but what it believed at the time.

Keep records in the repository next to the code they govern. A decision
archive in a wiki nobody opens is where context goes to die. Reviewing an
ADR in the same pull request that implements it costs nothing and keeps
the record honest.`,
			},
		},
		QuestionsBySlug: map[string][]domain.QuizQuestionSeed{
			"architecture-decision-records": {
				{
					QuestionText: "What happens to an ADR when the decision it records is later reversed?",
					Options: []string{
						"It is deleted to avoid confusion",
						"It is edited in place to reflect the new decision",
						"It is left unchanged and a new record supersedes it",
						"It is moved to the team wiki",
					},
					CorrectAnswer: "It is left unchanged and a new record supersedes it",
					Explanation:   "ADRs are append-only. The superseded chain preserves what the team believed at the time, which is exactly the context future maintainers need.",
					Difficulty:    domain.QuizEasy,
					OrderIndex:    1,
				},
				{
					QuestionText: "Which section of an ADR most distinguishes an honest record from an advocacy document?",
					Options: []string{
						"The title",
						"The consequences, including what becomes harder",
						"The list of authors",
						"The diagram",
					},
					CorrectAnswer: "The consequences, including what becomes harder",
					Explanation:   "Every decision accepts some cost. Recording the downsides is what makes the archive trustworthy when trade-offs are revisited later.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    2,
				},
			},
		},
	}
}
