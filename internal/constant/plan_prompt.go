package constant

// SwimCoachSystemPrompt primes the model for every generation call. It is
// synthesized per request and never stored in the conversation history.
const SwimCoachSystemPrompt = "You are a swim coach who creates detailed and personalized swim plans based on real masters swim training templates."

// InitialPlanPromptFormat renders the first user turn. Args: CSS minutes, CSS
// seconds, goal, plan duration in weeks, sessions per week, session duration
// in minutes, template block.
const InitialPlanPromptFormat = `Create a swim plan for a swimmer with a Critical Swim Speed (CSS) of %v minutes %v seconds per 100m. Their goal is to %s. The plan should last %v weeks, with %v sessions per week. Each session should last %v minutes.

IMPORTANT INSTRUCTIONS:
- Use the 4 session types each week: Mileage (distance), IM (strokes), Fast (speed), Kitchen Sink (mixed)
- Reuse and adapt structures from the templates below - do NOT invent wholly new set structures unless absolutely necessary
- Keep warm-up FIXED to "300 free + 100 pull" always
- Keep cool-down FIXED to "100 free" always
- Use the CSS to inform pacing for intervals
- Specify equipment (pull buoys, kickboards, fins) where applicable
- Always use metres
- Format output as a Markdown table ONLY with columns: Week | Session Number | Warm Up | Build Set | Main Set | Cool Down | Total Distance
- Do NOT include any additional text outside the table

%s`

// RegeneratePlanPrompt is sent when a follow-up request carries history but
// neither fresh inputs nor comments.
const RegeneratePlanPrompt = "Regenerate the plan as a clean Markdown table only, preserving the same constraints and using relevant templates."
