package content

import "learnhub-content/internal/domain"

func cloudArchitecture() domain.Bundle {
	return domain.Bundle{
		ID: "0008_cloud_architecture",
		Topic: domain.TopicSeed{
			Slug:          "cloud-architecture",
			Name:          "Cloud Architecture",
			Description:   "Designing for elastic infrastructure: scaling patterns, asynchronous messaging, and the operational habits that make services survivable.",
			EstimatedTime: 210,
			OrderIndex:    6,
		},
		Lessons: []domain.LessonSeed{
			{
				Slug:            "scaling-patterns",
				Title:           "Scaling Patterns",
				Summary:         "Vertical vs horizontal scaling, why statelessness is the entry ticket, and where the database becomes the bottleneck.",
				DifficultyLevel: domain.DifficultyIntermediate,
				EstimatedTime:   40,
				OrderIndex:      1,
				KeyPoints: []string{
					"Vertical scaling buys headroom; horizontal scaling buys headroom and resilience",
					"Horizontal scaling requires stateless application instances",
					"Session state moves to shared stores so any instance can serve any request",
					"The database scales last: read replicas first, sharding only when forced",
				},
				Content: `# Scaling Patterns

When a service runs out of capacity there are exactly two directions to
grow: a bigger machine, or more machines.

## Vertical: simple until it is not

Vertical scaling, more CPU, more memory, same single instance, requires
no code changes and is the right first move for most systems. Its limits
are hard ones: machines top out, prices grow super-linearly near the
top, and one instance is still one failure domain. The biggest box in
the catalogue still reboots.

## Horizontal: the entry ticket is statelessness

Horizontal scaling runs many identical instances behind a load
balancer. Capacity becomes a dial, and losing one instance costs a
fraction of capacity instead of the whole service. The price is a
design constraint: an instance must not hold anything a request needs
next time. In-memory sessions, local file uploads, in-process caches
that matter, all of it must move to shared infrastructure: session
state to a shared store, files to object storage, coordination to the
database or a lock service.

The test is brutal and useful: could you kill any instance at any
moment without a user noticing? If yes, you can also deploy by rolling
instances, autoscale on load, and survive a zone outage.

## The database scales last

Stateless app tiers multiply easily; the stateful tier does not. The
usual escalation is: tune queries and indexes, add read replicas and
route reads to them, cache the hottest reads, and only then consider
sharding, which fragments transactions and joins and should be treated
as the last resort it is. Most systems never need it; the ones that do
know long in advance.`,
			},
			{
				Slug:            "message-queues",
				Title:           "Message Queues",
				Summary:         "Decoupling producers from consumers: what queues buy, what at-least-once delivery demands, and why idempotent consumers are non-negotiable.",
				DifficultyLevel: domain.DifficultyIntermediate,
				EstimatedTime:   45,
				OrderIndex:      2,
				KeyPoints: []string{
					"Queues decouple producers from consumers in time and in load",
					"At-least-once delivery means duplicates; consumers must be idempotent",
					"A dead-letter queue keeps poison messages from blocking the world",
					"Queue depth is the single most honest backpressure signal",
				},
				Content: `# Message Queues

A synchronous call chain is only as available as its weakest link: if
the email service is down, signup fails, even though nothing about
creating an account requires email to succeed right now. A message
queue breaks the chain: the producer appends a message and moves on;
the consumer processes it when it can.

## What the queue buys

Decoupling in time: the consumer may be down for an hour, and the work
waits. Decoupling in load: a spike of ten thousand signups becomes a
queue that drains at the consumer's pace instead of a thundering herd.
And a natural retry point: a failed message returns to the queue
instead of unwinding a user-facing request.

## The duplicate problem

Exactly-once delivery across a network is a polite fiction; real
systems choose at-least-once. The consumer crashes after doing the
work but before acknowledging, and the message arrives again. The
consequence is a hard rule: consumers must be idempotent. Natural
idempotency (setting a flag, upserting by key) is best; otherwise a
processed-message table consulted inside the consumer's transaction
does the job, exactly like a seed runner checking its bookkeeping
table before applying a bundle.

## Poison messages and dead letters

A message that crashes its consumer will be redelivered and crash it
again, forever, blocking everything behind it. After a bounded number
of attempts the message moves to a dead-letter queue for humans to
inspect. A DLQ that nobody monitors is a silent data loss mechanism;
alert on its depth.

## Backpressure

Queue depth is the most honest signal a system emits: producers faster
than consumers, visible as a single number. Autoscaling consumers on
queue depth, and applying backpressure to producers when depth keeps
growing, turns overload from an outage into a slowdown.`,
			},
			{
				Slug:            "twelve-factor-apps",
				Title:           "Twelve-Factor Applications",
				Summary:         "The operational contract for cloud services: config in the environment, logs to stdout, disposable processes, and the factors that age well.",
				DifficultyLevel: domain.DifficultyBeginner,
				EstimatedTime:   35,
				OrderIndex:      3,
				KeyPoints: []string{
					"Configuration lives in the environment, never in the codebase",
					"Backing services are attached resources, swappable by changing a URL",
					"Processes are stateless and disposable; start fast, shut down cleanly",
					"Logs are an event stream to stdout; the platform handles routing and storage",
				},
				Content: `# Twelve-Factor Applications

The twelve-factor methodology is a checklist from the early
platform-as-a-service era describing how an application must behave to
be operable on infrastructure it does not control. A decade later, the
core factors read as the baseline contract for anything running in a
container.

## Config in the environment

The same build artifact runs in development, staging, and production;
only the environment differs. Database hosts, credentials, and feature
flags arrive as environment variables, DB_HOST, DB_PORT, DB_USER,
never as constants in the code or files baked into the image. The
test: could the codebase be open-sourced this minute without leaking a
credential?

## Backing services as attached resources

The database, the queue, the mail service: all are resources identified
by a URL in the config. Swapping the managed Postgres for a local one
is a config change, not a code change. Nothing in the application knows
or cares where the resource physically lives.

## Disposable processes

Processes start in seconds, shut down cleanly on SIGTERM, finishing
in-flight work and releasing connections, and survive being killed
without warning. Work that must not be lost half-done belongs in a
transaction or behind a queue with acknowledgements, so that sudden
death is an inconvenience rather than corruption.

## Logs as event streams

An application writes its events, unbuffered, to stdout. It does not
choose log files, rotate them, or ship them; the platform captures the
stream and routes it to whatever aggregation exists this year. The
application's only job is to emit structured, greppable lines.

Some factors aged into defaults nobody argues about; the lasting value
is the stance: an application is a guest on its infrastructure, and
guests that make no assumptions are the ones that run anywhere.`,
			},
		},
		ExamplesBySlug: map[string][]domain.CodeExampleSeed{
			"message-queues": {
				{
					Title:    "An idempotent consumer with a processed-message table",
					Language: "go",
					Code: `func (c *Consumer) Handle(ctx context.Context, msg Message) error {
    return c.withTx(ctx, func(tx *sql.Tx) error {
        var seen bool
        err := tx.QueryRowContext(ctx,
            "SELECT EXISTS(SELECT 1 FROM processed_messages WHERE id = $1)",
            msg.ID).Scan(&seen)
        if err != nil {
            return err
        }
        if seen {
            return nil // duplicate delivery, already handled
        }
        if err := c.applyWork(ctx, tx, msg); err != nil {
            return err
        }
        _, err = tx.ExecContext(ctx,
            "INSERT INTO processed_messages (id) VALUES ($1)", msg.ID)
        return err
    })
}`,
					Explanation: "The dedupe check, the work, and the bookkeeping row share one transaction, so a crash at any point leaves the message either fully processed or fully unprocessed, never half.",
					OrderIndex:  1,
				},
			},
			"twelve-factor-apps": {
				{
					Title:    "Clean shutdown on SIGTERM",
					Language: "go",
					Code: `func main() {
    ctx, stop := signal.NotifyContext(context.Background(),
        syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    srv := &http.Server{Addr: ":" + os.Getenv("PORT"), Handler: routes()}
    go func() {
        if err := srv.ListenAndServe(); err != http.ErrServerClosed {
            log.Fatal(err)
        }
    }()

    <-ctx.Done() // platform sent SIGTERM

    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    _ = srv.Shutdown(shutdownCtx) // drain in-flight requests, then exit
}`,
					Explanation: "The process treats SIGTERM as a routine event: stop accepting work, finish what is in flight within a bounded window, exit zero. Disposability is what makes rolling deploys and autoscaling safe.",
					OrderIndex:  1,
				},
			},
		},
		QuestionsBySlug: map[string][]domain.QuizQuestionSeed{
			"scaling-patterns": {
				{
					QuestionText: "What is the prerequisite for scaling an application tier horizontally?",
					Options: []string{
						"A service mesh",
						"Instances must be stateless, holding nothing a future request depends on",
						"All code rewritten as microservices",
						"A NoSQL database",
					},
					CorrectAnswer: "Instances must be stateless, holding nothing a future request depends on",
					Explanation:   "A load balancer can only spread requests across instances if any instance can serve any request. Session state and local files must move to shared infrastructure first.",
					Difficulty:    domain.QuizEasy,
					OrderIndex:    1,
				},
				{
					QuestionText: "Which step comes last in the usual database scaling escalation?",
					Options: []string{
						"Adding read replicas",
						"Tuning queries and indexes",
						"Sharding the data across nodes",
						"Caching hot reads",
					},
					CorrectAnswer: "Sharding the data across nodes",
					Explanation:   "Sharding fragments transactions and joins and complicates every query thereafter. Tuning, replicas, and caching defer it, often permanently.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    2,
				},
			},
			"message-queues": {
				{
					QuestionText: "Why must consumers of an at-least-once queue be idempotent?",
					Options: []string{
						"Because queues reorder messages alphabetically",
						"Because a consumer can crash after doing the work but before acknowledging, so the message is delivered again",
						"Because producers always send every message twice",
						"Because idempotency makes consumers faster",
					},
					CorrectAnswer: "Because a consumer can crash after doing the work but before acknowledging, so the message is delivered again",
					Explanation:   "At-least-once delivery guarantees duplicates under failure. Processing a message twice must yield the same state as processing it once.",
					Difficulty:    domain.QuizMedium,
					OrderIndex:    1,
				},
				{
					QuestionText: "What problem does a dead-letter queue solve?",
					Options: []string{
						"It archives every processed message for analytics",
						"It prevents a poison message from being redelivered forever and blocking everything behind it",
						"It compresses old messages",
						"It guarantees exactly-once delivery",
					},
					CorrectAnswer: "It prevents a poison message from being redelivered forever and blocking everything behind it",
					Explanation:   "After bounded retries a crashing message is set aside for human inspection. Without a DLQ, one malformed message can stall an entire queue.",
					Difficulty:    domain.QuizEasy,
					OrderIndex:    2,
				},
			},
			"twelve-factor-apps": {
				{
					QuestionText: "Where does a twelve-factor application keep its database credentials?",
					Options: []string{
						"In a constants file, per environment",
						"In environment variables read at startup",
						"Baked into the container image",
						"In the database itself",
					},
					CorrectAnswer: "In environment variables read at startup",
					Explanation:   "Config is strict separation of build and deploy: one artifact, many environments, differing only in the variables the platform injects.",
					Difficulty:    domain.QuizEasy,
					OrderIndex:    1,
				},
				{
					QuestionText: "How does a twelve-factor application handle its logs?",
					Options: []string{
						"Writes them as an unbuffered stream to stdout and lets the platform route them",
						"Rotates log files inside the container",
						"Ships them directly to a vendor API from application code",
						"Stores them in the application database",
					},
					CorrectAnswer: "Writes them as an unbuffered stream to stdout and lets the platform route them",
					Explanation:   "Log routing and retention are platform concerns that change without redeploys. The application's contract ends at emitting the stream.",
					Difficulty:    domain.QuizEasy,
					OrderIndex:    2,
				},
			},
		},
	}
}
